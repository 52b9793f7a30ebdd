package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"kbs-store/client"
	"kbs-store/models"
)

func main() {
	baseURL := os.Getenv("KBS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	stateDir := os.Getenv("KBS_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("cannot determine home directory:", err)
		}
		stateDir = home + "/.kbs"
	}

	store, err := client.NewFileStorage(stateDir)
	if err != nil {
		log.Fatal("cannot open state directory:", err)
	}

	app := &app{
		api:     client.NewAPIClient(baseURL),
		cart:    client.NewCart(store),
		store:   store,
		session: client.NewSession(),
		in:      bufio.NewScanner(os.Stdin),
	}
	app.run()
}

type app struct {
	api     *client.APIClient
	cart    *client.Cart
	store   client.Storage
	session *client.Session
	in      *bufio.Scanner
	items   []models.Item
}

func (a *app) run() {
	ctx := context.Background()

	var fallback bool
	a.items, fallback = a.api.LoadCatalog(ctx)
	if fallback {
		fmt.Println("! Backend unreachable, showing sample catalog")
	}

	fmt.Println("KBS Store - type 'help' for commands")
	for {
		fmt.Printf("[%s] > ", a.session.State())
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			a.help()
		case "list":
			a.list()
		case "add":
			a.add(fields[1:])
		case "rm":
			a.remove(fields[1:])
		case "qty":
			a.setQuantity(fields[1:])
		case "cart":
			a.showCart()
		case "checkout":
			a.checkout()
		case "admin":
			a.adminLogin(ctx, fields[1:])
		case "new":
			a.newItem(ctx)
		case "del":
			a.deleteItem(ctx, fields[1:])
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, try 'help'")
		}
	}
}

func (a *app) help() {
	fmt.Println(`  list              show catalog
  add <n>           add catalog row n to cart
  rm <id>           remove item from cart
  qty <id> <n>      set quantity (0 removes)
  cart              show cart
  checkout          compose WhatsApp order link
  admin <phone>     request admin PIN
  new               add catalog item (admin)
  del <id>          delete catalog item (admin)
  quit`)
}

func (a *app) list() {
	for i, item := range a.items {
		stock := ""
		if !item.InStock {
			stock = " (out of stock)"
		}
		fmt.Printf("%3d. %-35s ₹%.0f%s\n", i+1, item.Name, item.Price, stock)
	}
}

func (a *app) add(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: add <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.items) {
		fmt.Println("no such catalog row")
		return
	}
	item := a.items[n-1]
	a.cart.Add(item)
	fmt.Printf("added %s (cart: %d items)\n", item.Name, a.cart.ItemCount())
}

func (a *app) remove(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: rm <id>")
		return
	}
	a.cart.Remove(args[0])
}

func (a *app) setQuantity(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: qty <id> <n>")
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("quantity must be a number")
		return
	}
	a.cart.SetQuantity(args[0], n)
}

func (a *app) showCart() {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, line := range lines {
		fmt.Printf("  %-12s %-35s x%d  ₹%.0f\n", line.ID, line.Name, line.Quantity, line.Price*float64(line.Quantity))
	}
	fmt.Printf("total: ₹%.0f\n", a.cart.Total())
}

func (a *app) checkout() {
	if a.cart.Len() == 0 {
		fmt.Println("cart is empty")
		return
	}

	info, _ := a.store.LoadPreferences()
	info.Name = a.prompt("name", info.Name)
	info.Phone = a.prompt("phone", info.Phone)
	info.Address = a.prompt("address", info.Address)
	if err := a.store.SavePreferences(info); err != nil {
		log.Println("failed to save preferences:", err)
	}

	number := os.Getenv("WHATSAPP_NUMBER")
	fmt.Println("\nopen this link to send your order:")
	fmt.Println(client.OrderURL(a.cart.Lines(), info, number))

	a.cart.Clear()
	fmt.Println("\ncart cleared - we will contact you soon")
}

func (a *app) adminLogin(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: admin <phone>")
		return
	}

	if err := a.session.RequestAdmin(args[0]); err != nil {
		fmt.Println(err)
		return
	}

	resp, err := a.api.GeneratePin(ctx, a.session.Phone())
	if err != nil {
		fmt.Println("failed to generate PIN:", err)
		a.session.Reset()
		return
	}
	if resp.Pin != "" {
		// Development servers echo the PIN instead of delivering it
		// out-of-band.
		fmt.Println(client.ComposePinMessage(resp.Pin))
	} else {
		fmt.Println("PIN sent - check the configured channel")
	}

	pin := a.prompt("enter PIN", "")
	verified, err := a.api.VerifyPin(ctx, a.session.Phone(), pin)
	if err != nil || !verified {
		fmt.Println("PIN verification failed")
		a.session.Reset()
		return
	}

	if err := a.session.PinVerified(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("admin access granted")
}

func (a *app) newItem(ctx context.Context) {
	if !a.session.IsAdmin() {
		fmt.Println("admin access required, use 'admin <phone>'")
		return
	}

	req := models.CreateItemRequest{
		Name:        a.prompt("name", ""),
		Description: a.prompt("description", ""),
		Image:       a.prompt("image URL", ""),
		Category:    a.prompt("category", models.DefaultCategory),
	}
	price, err := strconv.ParseFloat(a.prompt("price", ""), 64)
	if err != nil {
		fmt.Println("price must be a number")
		return
	}
	req.Price = &price

	item, err := a.api.CreateItem(ctx, req)
	if err != nil {
		fmt.Println("failed to create item:", err)
		return
	}
	a.items = append([]models.Item{*item}, a.items...)
	fmt.Println("created", item.ID)
}

func (a *app) deleteItem(ctx context.Context, args []string) {
	if !a.session.IsAdmin() {
		fmt.Println("admin access required, use 'admin <phone>'")
		return
	}
	if len(args) != 1 {
		fmt.Println("usage: del <id>")
		return
	}

	if err := a.api.DeleteItem(ctx, args[0]); err != nil {
		fmt.Println("failed to delete item:", err)
		return
	}
	for i, item := range a.items {
		if item.ID == args[0] {
			a.items = append(a.items[:i], a.items[i+1:]...)
			break
		}
	}
	fmt.Println("deleted", args[0])
}

func (a *app) prompt(label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !a.in.Scan() {
		return current
	}
	text := strings.TrimSpace(a.in.Text())
	if text == "" {
		return current
	}
	return text
}
