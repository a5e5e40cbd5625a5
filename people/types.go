package people

import (
	"time"

	"github.com/jakenesler/planningcenter/pco"
)

// Person is a single member or user of the organization.
type Person struct {
	ID            pco.ID              `json:"id"`
	Attributes    PersonAttributes    `json:"attributes"`
	Relationships PersonRelationships `json:"relationships"`

	Addresses      []Address       `json:"addresses,omitempty"`
	Emails         []Email         `json:"emails,omitempty"`
	PhoneNumbers   []PhoneNumber   `json:"phone_numbers,omitempty"`
	Households     []Household     `json:"households,omitempty"`
	PrimaryCampus  *Campus         `json:"primary_campus,omitempty"`
	FieldData      []FieldDatum    `json:"field_data,omitempty"`
	SocialProfiles []SocialProfile `json:"social_profiles,omitempty"`
	InactiveReason *ListOption     `json:"inactive_reason,omitempty"`
	MaritalStatus  *ListOption     `json:"marital_status,omitempty"`
	NamePrefix     *ListOption     `json:"name_prefix,omitempty"`
	NameSuffix     *ListOption     `json:"name_suffix,omitempty"`
	School         *ListOption     `json:"school,omitempty"`
}

type PersonAttributes struct {
	Avatar                   string         `json:"avatar"`
	DemographicAvatarURL     string         `json:"demographic_avatar_url"`
	FirstName                string         `json:"first_name"`
	Name                     string         `json:"name"`
	Status                   string         `json:"status"`
	RemoteID                 *int64         `json:"remote_id"`
	AccountingAdministrator  bool           `json:"accounting_administrator"`
	Anniversary              *pco.Date      `json:"anniversary"`
	Birthdate                *pco.Date      `json:"birthdate"`
	Child                    bool           `json:"child"`
	GivenName                *string        `json:"given_name"`
	Grade                    *int           `json:"grade"`
	GraduationYear           *int           `json:"graduation_year"`
	LastName                 string         `json:"last_name"`
	MiddleName               *string        `json:"middle_name"`
	Nickname                 *string        `json:"nickname"`
	PeoplePermissions        *string        `json:"people_permissions"`
	SiteAdministrator        bool           `json:"site_administrator"`
	Gender                   *string        `json:"gender"`
	InactivatedAt            *time.Time     `json:"inactivated_at"`
	MedicalNotes             *string        `json:"medical_notes"`
	Membership               *string        `json:"membership"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
	CanCreateForms           bool           `json:"can_create_forms"`
	CanEmailLists            bool           `json:"can_email_lists"`
	DirectorySharedInfo      map[string]any `json:"directory_shared_info,omitempty"`
	DirectoryStatus          *string        `json:"directory_status"`
	PassedBackgroundCheck    *bool          `json:"passed_background_check"`
	ResourcePermissionFlags  map[string]any `json:"resource_permission_flags"`
	SchoolType               *string        `json:"school_type"`
	LoginIdentifier          *string        `json:"login_identifier,omitempty"`
	MFAConfigured            *bool          `json:"mfa_configured,omitempty"`
	StripeCustomerIdentifier *string        `json:"stripe_customer_identifier,omitempty"`
}

// Active reports whether the profile is active.
func (a PersonAttributes) Active() bool {
	return a.Status != StatusInactive && a.InactivatedAt == nil
}

type PersonRelationships struct {
	PrimaryCampus *PrimaryCampusRef `json:"primary_campus,omitempty"`
	Gender        *GenderRef        `json:"gender,omitempty"`
	Addresses     []AddressRef      `json:"addresses,omitempty"`
	Emails        []EmailRef        `json:"emails,omitempty"`
	PhoneNumbers  []PhoneNumberRef  `json:"phone_numbers,omitempty"`
	Households    []HouseholdRef    `json:"households,omitempty"`
}

// Email is an email address of a person.
type Email struct {
	ID         pco.ID          `json:"id"`
	Attributes EmailAttributes `json:"attributes"`
}

type EmailAttributes struct {
	Address   string    `json:"address"`
	Location  string    `json:"location"`
	Primary   bool      `json:"primary"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhoneNumber is a phone number of a person.
type PhoneNumber struct {
	ID         pco.ID                `json:"id"`
	Attributes PhoneNumberAttributes `json:"attributes"`
}

type PhoneNumberAttributes struct {
	Number        string    `json:"number"`
	Carrier       *string   `json:"carrier"`
	Location      string    `json:"location"`
	Primary       bool      `json:"primary"`
	E164          *string   `json:"e164"`
	International *string   `json:"international"`
	National      *string   `json:"national"`
	CountryCode   *string   `json:"country_code"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Address is a postal address of a person.
type Address struct {
	ID         pco.ID            `json:"id"`
	Attributes AddressAttributes `json:"attributes"`
}

type AddressAttributes struct {
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	CountryCode *string   `json:"country_code"`
	Location    string    `json:"location"`
	Primary     bool      `json:"primary"`
	StreetLine1 string    `json:"street_line_1"`
	StreetLine2 *string   `json:"street_line_2"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Household groups people living together.
type Household struct {
	ID         pco.ID              `json:"id"`
	Attributes HouseholdAttributes `json:"attributes"`
}

type HouseholdAttributes struct {
	Name               string    `json:"name"`
	MemberCount        int       `json:"member_count"`
	PrimaryContactName string    `json:"primary_contact_name"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Avatar             string    `json:"avatar"`
}

// Campus is a campus of the organization.
type Campus struct {
	ID         pco.ID           `json:"id"`
	Attributes CampusAttributes `json:"attributes"`
}

type CampusAttributes struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FieldDatum is the value of a custom field for a person.
type FieldDatum struct {
	ID         pco.ID `json:"id"`
	Attributes struct {
		Value    string  `json:"value"`
		FileName *string `json:"file_name"`
	} `json:"attributes"`
}

// SocialProfile is a social network profile of a person.
type SocialProfile struct {
	ID         pco.ID `json:"id"`
	Attributes struct {
		Site     string `json:"site"`
		URL      string `json:"url"`
		Verified bool   `json:"verified"`
	} `json:"attributes"`
}

// ListOption is a value from one of the organization's configurable lists,
// such as marital statuses or name prefixes.
type ListOption struct {
	ID         pco.ID `json:"id"`
	Attributes struct {
		Value string `json:"value"`
	} `json:"attributes"`
}
