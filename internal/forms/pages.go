package forms

// Form IDs used by the site.
const (
	ContactID  = "contact"
	PurchaseID = "purchase"
)

const telPattern = `\+?[0-9 ()-]{7,20}`

// ContactForm builds the contact page form.
func ContactForm() *Form {
	return &Form{
		ID:              ContactID,
		Title:           "Contact us",
		NeedsValidation: true,
		Fields: []Field{
			{Name: "name", Label: "Name", Placeholder: "Jane Doe", Required: true, MinLength: 2},
			{Name: "email", Label: "Email", Placeholder: "jane@example.com", Kind: KindEmail, Required: true},
			{Name: "phone", Label: "Phone", Placeholder: "optional", Kind: KindTel, Pattern: telPattern},
			{Name: "message", Label: "Message", Required: true, MaxLength: 500},
		},
	}
}

// PurchaseForm builds the Buy-Car page form with the car prefilled.
func PurchaseForm(car string) *Form {
	return &Form{
		ID:              PurchaseID,
		Title:           "Buy this car",
		NeedsValidation: true,
		Fields: []Field{
			{Name: "car", Label: "Car", Value: car, Required: true, Feedback: "Pick a car from the showroom."},
			{Name: "name", Label: "Full name", Required: true, MinLength: 2},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "phone", Label: "Phone", Kind: KindTel, Required: true, Pattern: telPattern},
		},
	}
}
