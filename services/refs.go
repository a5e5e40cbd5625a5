package services

import "github.com/jakenesler/planningcenter/pco"

type (
	AttachmentTypeKind               struct{}
	BlockoutKind                     struct{}
	FolderKind                       struct{}
	OrganizationKind                 struct{}
	PersonKind                       struct{}
	PersonTeamPositionAssignmentKind struct{}
	PlanKind                         struct{}
	PlanNoteCategoryKind             struct{}
	PlanPersonKind                   struct{}
	PlanTimeKind                     struct{}
	SeriesKind                       struct{}
	ServiceTypeKind                  struct{}
	SplitTeamRehearsalAssignmentKind struct{}
	TagKind                          struct{}
	TeamKind                         struct{}
	TeamPositionKind                 struct{}
	TimePreferenceOptionKind         struct{}
)

func (AttachmentTypeKind) Kind() string               { return "AttachmentType" }
func (BlockoutKind) Kind() string                     { return "Blockout" }
func (FolderKind) Kind() string                       { return "Folder" }
func (OrganizationKind) Kind() string                 { return "Organization" }
func (PersonKind) Kind() string                       { return "Person" }
func (PersonTeamPositionAssignmentKind) Kind() string { return "PersonTeamPositionAssignment" }
func (PlanKind) Kind() string                         { return "Plan" }
func (PlanNoteCategoryKind) Kind() string             { return "PlanNoteCategory" }
func (PlanPersonKind) Kind() string                   { return "PlanPerson" }
func (PlanTimeKind) Kind() string                     { return "PlanTime" }
func (SeriesKind) Kind() string                       { return "Series" }
func (ServiceTypeKind) Kind() string                  { return "ServiceType" }
func (SplitTeamRehearsalAssignmentKind) Kind() string { return "SplitTeamRehearsalAssignment" }
func (TagKind) Kind() string                          { return "Tag" }
func (TeamKind) Kind() string                         { return "Team" }
func (TeamPositionKind) Kind() string                 { return "TeamPosition" }
func (TimePreferenceOptionKind) Kind() string         { return "TimePreferenceOption" }

// Typed references used in relationship fields.
type (
	AttachmentTypeRef               = pco.Ref[AttachmentTypeKind]
	BlockoutRef                     = pco.Ref[BlockoutKind]
	FolderRef                       = pco.Ref[FolderKind]
	OrganizationRef                 = pco.Ref[OrganizationKind]
	PersonRef                       = pco.Ref[PersonKind]
	PersonTeamPositionAssignmentRef = pco.Ref[PersonTeamPositionAssignmentKind]
	PlanRef                         = pco.Ref[PlanKind]
	PlanNoteCategoryRef             = pco.Ref[PlanNoteCategoryKind]
	PlanPersonRef                   = pco.Ref[PlanPersonKind]
	PlanTimeRef                     = pco.Ref[PlanTimeKind]
	SeriesRef                       = pco.Ref[SeriesKind]
	ServiceTypeRef                  = pco.Ref[ServiceTypeKind]
	SplitTeamRehearsalAssignmentRef = pco.Ref[SplitTeamRehearsalAssignmentKind]
	TagRef                          = pco.Ref[TagKind]
	TeamRef                         = pco.Ref[TeamKind]
	TeamPositionRef                 = pco.Ref[TeamPositionKind]
	TimePreferenceOptionRef         = pco.Ref[TimePreferenceOptionKind]
)
