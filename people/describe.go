package people

import "github.com/jakenesler/planningcenter/pco"

// Describe lists the endpoints of the app.
func Describe() []pco.Descriptor {
	contactOps := []pco.Operation{pco.OpGet, pco.OpList, pco.OpCreate}
	return []pco.Descriptor{
		{
			App:        Name,
			Name:       "people",
			Kind:       "Person",
			Summary:    "Every person in the organization.",
			Ops:        []pco.Operation{pco.OpGet, pco.OpList, pco.OpCreate, pco.OpUpdate, pco.OpDelete},
			Options:    pco.Describe(PeopleOptions{}),
			Attributes: pco.AttributeNames(PersonParams{}),
			Body:       PersonParams{},
		},
		{App: Name, Name: "emails", Kind: "Email", Parents: []string{"people"}, Summary: "Email addresses of a person.", Ops: contactOps, Attributes: pco.AttributeNames(EmailParams{}), Body: EmailParams{}},
		{App: Name, Name: "phone_numbers", Kind: "PhoneNumber", Parents: []string{"people"}, Summary: "Phone numbers of a person.", Ops: contactOps, Attributes: pco.AttributeNames(PhoneNumberParams{}), Body: PhoneNumberParams{}},
		{App: Name, Name: "addresses", Kind: "Address", Parents: []string{"people"}, Summary: "Postal addresses of a person.", Ops: contactOps, Attributes: pco.AttributeNames(AddressParams{}), Body: AddressParams{}},
	}
}
