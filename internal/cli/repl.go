package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errUsage is returned by handlers that got the wrong arguments.
var errUsage = errors.New("usage")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Products(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context, args []string) error
	RemoveProduct(ctx context.Context, args []string) error
	Cart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	SetQty(ctx context.Context, args []string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
}

var usage = map[string]string{
	"editproduct": "Usage: editproduct <id>",
	"rmproduct":   "Usage: rmproduct <id>",
	"addcart":     "Usage: addcart <id> [qty]",
	"setqty":      "Usage: setqty <id> <qty>",
}

// runREPL starts a simple read–eval–print loop for the demomarket CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
// Handlers share reader with the loop, so their prompts consume the lines
// that follow the command.
//
// Commands
//
//	Always:
//	  - help                  show available commands
//	  - products              list the catalog
//	  - cart                  show the cart with prices
//	  - addcart <id> [qty]    add a product to the cart (qty defaults to 1)
//	  - setqty <id> <qty>     replace a quantity, 0 removes the line
//	  - clearcart             empty the cart
//	  - exit | quit           leave the program
//
//	Not logged in:
//	  - signup                create an account
//	  - login                 authenticate
//
//	Logged in:
//	  - whoami                show the current user
//	  - addproduct            list a new product
//	  - editproduct <id>      edit one of your products
//	  - rmproduct <id>        remove one of your products
//	  - checkout              place an order for the cart
//	  - orders                show your orders
//	  - logout                end the session
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("market (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: products, addproduct, editproduct, rmproduct, cart, addcart, setqty, clearcart, checkout, orders, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, products, cart, addcart, setqty, clearcart, exit")
			}

		case "signup":
			cmdErr = a.Signup(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "products":
			cmdErr = a.Products(ctx)

		case "addproduct":
			cmdErr = a.AddProduct(ctx)

		case "editproduct":
			cmdErr = a.EditProduct(ctx, args)

		case "rmproduct":
			cmdErr = a.RemoveProduct(ctx, args)

		case "cart":
			cmdErr = a.Cart(ctx)

		case "addcart":
			cmdErr = a.AddToCart(ctx, args)

		case "setqty":
			cmdErr = a.SetQty(ctx, args)

		case "clearcart":
			cmdErr = a.ClearCart(ctx)

		case "checkout":
			cmdErr = a.Checkout(ctx)

		case "orders":
			cmdErr = a.Orders(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		switch {
		case cmdErr == nil:
		case errors.Is(cmdErr, errUsage):
			printlnFn(usage[cmd])
		default:
			printlnFn("error:", cmdErr)
		}

		if err != nil {
			return
		}
	}
}
