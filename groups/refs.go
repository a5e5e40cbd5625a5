package groups

import "github.com/jakenesler/planningcenter/pco"

type (
	EnrollmentKind struct{}
	GroupKind      struct{}
	GroupTypeKind  struct{}
	LocationKind   struct{}
	PersonKind     struct{}
)

func (EnrollmentKind) Kind() string { return "Enrollment" }
func (GroupKind) Kind() string      { return "Group" }
func (GroupTypeKind) Kind() string  { return "GroupType" }
func (LocationKind) Kind() string   { return "Location" }
func (PersonKind) Kind() string     { return "Person" }

type (
	EnrollmentRef = pco.Ref[EnrollmentKind]
	GroupRef      = pco.Ref[GroupKind]
	GroupTypeRef  = pco.Ref[GroupTypeKind]
	LocationRef   = pco.Ref[LocationKind]
	PersonRef     = pco.Ref[PersonKind]
)
