package groups

import (
	"encoding/json"
	"time"

	"github.com/jakenesler/planningcenter/pco"
)

// Group is a group of people that meet together regularly.
type Group struct {
	ID            pco.ID             `json:"id"`
	Attributes    GroupAttributes    `json:"attributes"`
	Relationships GroupRelationships `json:"relationships"`

	Enrollment *Enrollment `json:"enrollment,omitempty"`
	GroupType  *GroupType  `json:"group_type,omitempty"`
	Location   *Location   `json:"location,omitempty"`
}

type GroupAttributes struct {
	ArchivedAt                     *time.Time        `json:"archived_at"`
	CanCreateConversation          *bool             `json:"can_create_conversation,omitempty"`
	ChatEnabled                    bool              `json:"chat_enabled"`
	ContactEmail                   *string           `json:"contact_email"`
	CreatedAt                      time.Time         `json:"created_at"`
	Description                    *string           `json:"description"`
	EventsVisibility               string            `json:"events_visibility"`
	HeaderImage                    map[string]string `json:"header_image"`
	LeadersCanSearchPeopleDatabase bool              `json:"leaders_can_search_people_database"`
	LocationTypePreference         string            `json:"location_type_preference"`
	MembershipsCount               int               `json:"memberships_count"`
	Name                           string            `json:"name"`
	PublicChurchCenterWebURL       *string           `json:"public_church_center_web_url"`
	Schedule                       *string           `json:"schedule"`
	VirtualLocationURL             *string           `json:"virtual_location_url"`
}

// Archived reports whether the group has been archived.
func (a GroupAttributes) Archived() bool {
	return a.ArchivedAt != nil
}

type GroupRelationships struct {
	GroupType  *GroupTypeRef  `json:"group_type,omitempty"`
	Location   *LocationRef   `json:"location,omitempty"`
	Enrollment *EnrollmentRef `json:"enrollment,omitempty"`
}

// GroupType is a category of groups, such as small groups or classes.
type GroupType struct {
	ID         pco.ID              `json:"id"`
	Attributes GroupTypeAttributes `json:"attributes"`
}

type GroupTypeAttributes struct {
	ChurchCenterVisible    bool    `json:"church_center_visible"`
	ChurchCenterMapVisible bool    `json:"church_center_map_visible"`
	Color                  string  `json:"color"`
	DefaultGroupSettings   string  `json:"default_group_settings"`
	Description            *string `json:"description"`
	Name                   string  `json:"name"`
	Position               int     `json:"position"`
}

// Resource types and visibilities.
const (
	FileResource = "FileResource"
	LinkResource = "LinkResource"

	VisibleToLeaders = "leaders"
	VisibleToMembers = "members"
)

// Resource is a file or link shared with the groups of a type.
type Resource struct {
	ID            pco.ID                `json:"id"`
	Attributes    ResourceAttributes    `json:"attributes"`
	Relationships ResourceRelationships `json:"relationships"`
}

type ResourceAttributes struct {
	Description *string   `json:"description"`
	LastUpdated time.Time `json:"last_updated"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Visibility  string    `json:"visibility"`
}

type ResourceRelationships struct {
	CreatedBy *PersonRef `json:"created_by,omitempty"`
}

// Membership roles.
const (
	RoleMember = "member"
	RoleLeader = "leader"
)

// Membership is a person's membership of a group.
type Membership struct {
	ID            pco.ID                  `json:"id"`
	Attributes    MembershipAttributes    `json:"attributes"`
	Relationships MembershipRelationships `json:"relationships"`

	Person *Person `json:"person,omitempty"`
}

type MembershipAttributes struct {
	JoinedAt time.Time `json:"joined_at"`
	Role     string    `json:"role"`
}

type MembershipRelationships struct {
	Group  *GroupRef  `json:"group,omitempty"`
	Person *PersonRef `json:"person,omitempty"`
}

// Person is a Planning Center user as seen by Groups.
type Person struct {
	ID         pco.ID           `json:"id"`
	Attributes PersonAttributes `json:"attributes"`
}

type PersonAttributes struct {
	Addresses      []Address     `json:"addresses"`
	AvatarURL      string        `json:"avatar_url"`
	Child          *bool         `json:"child,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	EmailAddresses []Email       `json:"email_addresses"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Permissions    string        `json:"permissions"`
	PhoneNumbers   []PhoneNumber `json:"phone_numbers"`
}

// PrimaryEmail returns the primary email address, or the first one.
func (a PersonAttributes) PrimaryEmail() string {
	for _, e := range a.EmailAddresses {
		if e.Primary {
			return e.Address
		}
	}
	if len(a.EmailAddresses) > 0 {
		return a.EmailAddresses[0].Address
	}
	return ""
}

type Address struct {
	City        string  `json:"city"`
	Line1       string  `json:"line_1"`
	Line2       *string `json:"line_2,omitempty"`
	Location    string  `json:"location"`
	State       string  `json:"state"`
	Street      string  `json:"street"`
	StreetLine1 string  `json:"street_line_1"`
	StreetLine2 *string `json:"street_line_2,omitempty"`
	Zip         *string `json:"zip,omitempty"`
}

type Email struct {
	Address  string `json:"address"`
	Location string `json:"location"`
	Primary  bool   `json:"primary"`
}

type PhoneNumber struct {
	Number   string  `json:"number"`
	Carrier  *string `json:"carrier,omitempty"`
	Location string  `json:"location"`
	Primary  bool    `json:"primary"`
}

// Enrollment holds the sign up settings of a group.
type Enrollment struct {
	ID         pco.ID               `json:"id"`
	Attributes EnrollmentAttributes `json:"attributes"`
}

type EnrollmentAttributes struct {
	AutoClosed         bool      `json:"auto_closed"`
	AutoClosedReason   *string   `json:"auto_closed_reason"`
	DateLimit          *pco.Date `json:"date_limit"`
	DateLimitReached   bool      `json:"date_limit_reached"`
	MemberLimit        *int      `json:"member_limit"`
	MemberLimitReached bool      `json:"member_limit_reached"`
	Status             string    `json:"status"`
	Strategy           string    `json:"strategy"`
}

// Location is where a group meets.
type Location struct {
	ID         pco.ID             `json:"id"`
	Attributes LocationAttributes `json:"attributes"`
}

type LocationAttributes struct {
	DisplayPreference    string      `json:"display_preference"`
	FullFormattedAddress *string     `json:"full_formatted_address"`
	Latitude             json.Number `json:"latitude"`
	Longitude            json.Number `json:"longitude"`
	Name                 string      `json:"name"`
	Radius               json.Number `json:"radius"`
	Strategy             string      `json:"strategy"`
}
