package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context) error
	Expenses(ctx context.Context) error
	AddExpense(ctx context.Context) error
	DeleteExpense(ctx context.Context) error
	Income(ctx context.Context) error
	AddIncome(ctx context.Context) error
	DeleteIncome(ctx context.Context) error
	Budgets(ctx context.Context) error
	AddBudget(ctx context.Context) error
	DeleteBudget(ctx context.Context) error
	Alerts(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FinKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own user-facing messages. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, categories, addcategory, delcategory, expenses, addexpense, delexpense, income, addincome, delincome, budgets, addbudget, delbudget, alerts, stats, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "me":
			_ = a.Me(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "addcategory":
			_ = a.AddCategory(ctx)

		case "delcategory":
			_ = a.DeleteCategory(ctx)

		case "e", "expenses":
			_ = a.Expenses(ctx)

		case "addexpense":
			_ = a.AddExpense(ctx)

		case "delexpense":
			_ = a.DeleteExpense(ctx)

		case "i", "income":
			_ = a.Income(ctx)

		case "addincome":
			_ = a.AddIncome(ctx)

		case "delincome":
			_ = a.DeleteIncome(ctx)

		case "budgets":
			_ = a.Budgets(ctx)

		case "addbudget":
			_ = a.AddBudget(ctx)

		case "delbudget":
			_ = a.DeleteBudget(ctx)

		case "alerts":
			_ = a.Alerts(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
