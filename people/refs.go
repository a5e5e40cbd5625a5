package people

import "github.com/jakenesler/planningcenter/pco"

type (
	AddressKind       struct{}
	EmailKind         struct{}
	GenderKind        struct{}
	HouseholdKind     struct{}
	PhoneNumberKind   struct{}
	PrimaryCampusKind struct{}
)

func (AddressKind) Kind() string       { return "Address" }
func (EmailKind) Kind() string         { return "Email" }
func (GenderKind) Kind() string        { return "Gender" }
func (HouseholdKind) Kind() string     { return "Household" }
func (PhoneNumberKind) Kind() string   { return "PhoneNumber" }
func (PrimaryCampusKind) Kind() string { return "PrimaryCampus" }

type (
	AddressRef       = pco.Ref[AddressKind]
	EmailRef         = pco.Ref[EmailKind]
	GenderRef        = pco.Ref[GenderKind]
	HouseholdRef     = pco.Ref[HouseholdKind]
	PhoneNumberRef   = pco.Ref[PhoneNumberKind]
	PrimaryCampusRef = pco.Ref[PrimaryCampusKind]
)
