package session

import "fmt"

// Prompts.
const (
	PromptCategory = "Enter a Category: "
	PromptName     = "Enter a Product Name: "
	PromptPrice    = "Enter a Price: "
	PromptSearch   = "Enter a Product Name: "
	PromptCommand  = "\nEnter a command: "
)

// Output lines.
const (
	Header = "🟡 Category\tProduct\tPrice"

	msgAdded        = "✅ The product was successfully added!"
	msgEmptyInput   = "Input cannot be empty."
	msgEmptyName    = "Name cannot be empty."
	msgInvalidPrice = "Invalid price. Please enter a positive number."
	msgInvalidCmd   = "Invalid choice. Please try again."
	msgNoResults    = "No products found matching your search."

	errorPrefix  = "❌ "
	resultPrefix = "🟣 "
	totalPrefix  = "\nTotal amount: "
)

func banner(quit string) string {
	return fmt.Sprintf("🟡 To enter a new product - follow the steps | To quit - enter: %q", quit)
}

func menu(add, search, quit string) string {
	return fmt.Sprintf("\nTo enter a new product - enter: %q | To search for a product - enter: %q | To quit - enter: %q", add, search, quit)
}
