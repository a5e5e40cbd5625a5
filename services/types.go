package services

import (
	"encoding/json"
	"time"

	"github.com/jakenesler/planningcenter/pco"
)

// Organization is the root of an account, where account-level settings live.
type Organization struct {
	ID         pco.ID                 `json:"id"`
	Attributes OrganizationAttributes `json:"attributes"`
}

type OrganizationAttributes struct {
	CCLI                             string     `json:"ccli"`
	CreatedAt                        time.Time  `json:"created_at"`
	DateFormat                       int        `json:"date_format"`
	MusicStandEnabled                bool       `json:"music_stand_enabled"`
	Name                             string     `json:"name"`
	ProjectorEnabled                 bool       `json:"projector_enabled"`
	TimeZone                         string     `json:"time_zone"`
	TwentyFourHourTime               bool       `json:"twenty_four_hour_time"`
	UpdatedAt                        *time.Time `json:"updated_at"`
	OwnerName                        string     `json:"owner_name"`
	RequiredToSetDownloadPermissions string     `json:"required_to_set_download_permissions"`
	Secret                           string     `json:"secret"`
	AllowMP3Download                 bool       `json:"allow_mp3_download"`
	CalendarStartsOnSunday           bool       `json:"calendar_starts_on_sunday"`
	CCLIConnected                    bool       `json:"ccli_connected"`
	CCLIAutoReportingEnabled         bool       `json:"ccli_auto_reporting_enabled"`
	CCLIReportingEnabled             bool       `json:"ccli_reporting_enabled"`
	ExtraFileStorageAllowed          bool       `json:"extra_file_storage_allowed"`
	FileStorageExceeded              bool       `json:"file_storage_exceeded"`
	FileStorageSize                  int64      `json:"file_storage_size"`
	FileStorageSizeUsed              int64      `json:"file_storage_size_used"`
	FileStorageExtraEnabled          bool       `json:"file_storage_extra_enabled"`
	RehearsalMixEnabled              bool       `json:"rehearsal_mix_enabled"`
	RehearsalPackConnected           bool       `json:"rehearsal_pack_connected"`
	LegacyID                         string     `json:"legacy_id"`
	FileStorageExtraCharges          int        `json:"file_storage_extra_charges"`
	PeopleAllowed                    int        `json:"people_allowed"`
	PeopleRemaining                  int        `json:"people_remaining"`
	Beta                             bool       `json:"beta"`
}

// Person is someone added to Services.
type Person struct {
	ID            pco.ID              `json:"id"`
	Attributes    PersonAttributes    `json:"attributes"`
	Relationships PersonRelationships `json:"relationships"`
	Links         *PersonLinks        `json:"links,omitempty"`
}

type PersonAttributes struct {
	PhotoURL                  string     `json:"photo_url"`
	PhotoThumbnailURL         string     `json:"photo_thumbnail_url"`
	PreferredApp              string     `json:"preferred_app"`
	AssignedToRehearsalTeam   bool       `json:"assigned_to_rehearsal_team"`
	ArchivedAt                *time.Time `json:"archived_at"`
	CreatedAt                 time.Time  `json:"created_at"`
	FirstName                 string     `json:"first_name"`
	LastName                  string     `json:"last_name"`
	NamePrefix                *string    `json:"name_prefix"`
	NameSuffix                *string    `json:"name_suffix"`
	UpdatedAt                 time.Time  `json:"updated_at"`
	FullName                  string     `json:"full_name"`
	Permissions               string     `json:"permissions"`
	Status                    string     `json:"status"`
	MaxPermissions            string     `json:"max_permissions"`
	Anniversary               *pco.Date  `json:"anniversary"`
	Birthdate                 *pco.Date  `json:"birthdate"`
	GivenName                 *string    `json:"given_name"`
	MiddleName                *string    `json:"middle_name"`
	Nickname                  *string    `json:"nickname"`
	MediaPermissions          *string    `json:"media_permissions,omitempty"`
	SongPermissions           *string    `json:"song_permissions,omitempty"`
	Archived                  bool       `json:"archived"`
	SiteAdministrator         bool       `json:"site_administrator"`
	LoggedInAt                *time.Time `json:"logged_in_at"`
	Notes                     *string    `json:"notes"`
	PassedBackgroundCheck     bool       `json:"passed_background_check"`
	ICalCode                  string     `json:"ical_code"`
	AccessMediaAttachments    bool       `json:"access_media_attachments"`
	AccessPlanAttachments     bool       `json:"access_plan_attachments"`
	AccessSongAttachments     bool       `json:"access_song_attachments"`
	PreferredMaxPlansPerDay   *int       `json:"preferred_max_plans_per_day"`
	PreferredMaxPlansPerMonth *int       `json:"preferred_max_plans_per_month"`
	PraiseChartsEnabled       *bool      `json:"praise_charts_enabled,omitempty"`
	MeTab                     *string    `json:"me_tab,omitempty"`
	PlansTab                  *string    `json:"plans_tab,omitempty"`
	SongsTab                  *string    `json:"songs_tab,omitempty"`
	MediaTab                  *string    `json:"media_tab,omitempty"`
	PeopleTab                 *string    `json:"people_tab,omitempty"`
	CanEditAllPeople          *bool      `json:"can_edit_all_people,omitempty"`
	CanViewAllPeople          *bool      `json:"can_view_all_people,omitempty"`
	Onboardings               []any      `json:"onboardings,omitempty"`
}

type PersonRelationships struct {
	CreatedBy     *PersonRef `json:"created_by,omitempty"`
	UpdatedBy     *PersonRef `json:"updated_by,omitempty"`
	CurrentFolder *FolderRef `json:"current_folder,omitempty"`
}

// PersonLinks are the API links published for a person.
type PersonLinks struct {
	AssignTags                    string `json:"assign_tags,omitempty"`
	AvailableSignups              string `json:"available_signups,omitempty"`
	Blockouts                     string `json:"blockouts,omitempty"`
	CollapseServiceTypes          string `json:"collapse_service_types,omitempty"`
	Emails                        string `json:"emails,omitempty"`
	ExpandServiceTypes            string `json:"expand_service_types,omitempty"`
	HTML                          string `json:"html,omitempty"`
	PersonTeamPositionAssignments string `json:"person_team_position_assignments,omitempty"`
	PlanPeople                    string `json:"plan_people,omitempty"`
	Schedules                     string `json:"schedules,omitempty"`
	SchedulingPreferences         string `json:"scheduling_preferences,omitempty"`
	Self                          string `json:"self,omitempty"`
	Tags                          string `json:"tags,omitempty"`
	TeamLeaders                   string `json:"team_leaders,omitempty"`
	TextSettings                  string `json:"text_settings,omitempty"`
}

// Blockout is a date range a person is unavailable, with an optional
// recurrence pattern.
type Blockout struct {
	ID            pco.ID                `json:"id"`
	Attributes    BlockoutAttributes    `json:"attributes"`
	Relationships BlockoutRelationships `json:"relationships"`
}

type BlockoutAttributes struct {
	Description      string    `json:"description"`
	GroupIdentifier  *string   `json:"group_identifier"`
	OrganizationName string    `json:"organization_name"`
	Reason           *string   `json:"reason"`
	RepeatFrequency  string    `json:"repeat_frequency"`
	RepeatInterval   *string   `json:"repeat_interval"`
	RepeatPeriod     *string   `json:"repeat_period"`
	Settings         *string   `json:"settings"`
	TimeZone         string    `json:"time_zone"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	RepeatUntil      *pco.Date `json:"repeat_until"`
	StartsAt         time.Time `json:"starts_at"`
	EndsAt           time.Time `json:"ends_at"`
	Share            bool      `json:"share"`
}

type BlockoutRelationships struct {
	Person       PersonRef       `json:"person"`
	Organization OrganizationRef `json:"organization"`
}

// Schedule is one scheduled position of a person, with the data needed to
// show it in their schedule.
type Schedule struct {
	ID            pco.ID                `json:"id"`
	Attributes    ScheduleAttributes    `json:"attributes"`
	Relationships ScheduleRelationships `json:"relationships"`
}

type ScheduleAttributes struct {
	SortDate                       time.Time `json:"sort_date"`
	Dates                          string    `json:"dates"`
	DeclineReason                  *string   `json:"decline_reason"`
	OrganizationName               string    `json:"organization_name"`
	OrganizationTimeZone           string    `json:"organization_time_zone"`
	OrganizationTwentyFourHourTime bool      `json:"organization_twenty_four_hour_time"`
	PersonName                     string    `json:"person_name"`
	PositionDisplayTimes           *string   `json:"position_display_times"`
	RespondsToName                 string    `json:"responds_to_name"`
	ServiceTypeName                string    `json:"service_type_name"`
	ShortDates                     string    `json:"short_dates"`
	Status                         string    `json:"status"`
	TeamName                       string    `json:"team_name"`
	TeamPositionName               string    `json:"team_position_name"`
	CanAcceptPartial               bool      `json:"can_accept_partial"`
	CanAcceptPartialOneTime        bool      `json:"can_accept_partial_one_time"`
	CanRehearse                    bool      `json:"can_rehearse"`
	PlanVisible                    bool      `json:"plan_visible"`
	PlanVisibleToMe                bool      `json:"plan_visible_to_me"`
}

type ScheduleRelationships struct {
	Person           PersonRef       `json:"person"`
	ServiceType      ServiceTypeRef  `json:"service_type"`
	Organization     OrganizationRef `json:"organization"`
	PlanPerson       PlanPersonRef   `json:"plan_person"`
	Plan             PlanRef         `json:"plan"`
	Team             TeamRef         `json:"team"`
	RespondsToPerson *PersonRef      `json:"responds_to_person,omitempty"`
}

// Email is an email address of a person.
type Email struct {
	ID         pco.ID          `json:"id"`
	Attributes EmailAttributes `json:"attributes"`
}

type EmailAttributes struct {
	Address string `json:"address"`
	Primary bool   `json:"primary"`
}

// ServiceType is a container for plans.
type ServiceType struct {
	ID            pco.ID                   `json:"id"`
	Attributes    ServiceTypeAttributes    `json:"attributes"`
	Relationships ServiceTypeRelationships `json:"relationships"`

	TimePreferenceOptions []TimePreferenceOption `json:"time_preference_options,omitempty"`
}

type ServiceTypeAttributes struct {
	ArchivedAt                 *time.Time      `json:"archived_at"`
	CreatedAt                  time.Time       `json:"created_at"`
	DeletedAt                  *time.Time      `json:"deleted_at"`
	Name                       string          `json:"name"`
	Sequence                   int             `json:"sequence"`
	UpdatedAt                  time.Time       `json:"updated_at"`
	Permissions                string          `json:"permissions"`
	AttachmentTypesEnabled     bool            `json:"attachment_types_enabled"`
	ScheduledPublish           bool            `json:"scheduled_publish"`
	CustomItemTypes            json.RawMessage `json:"custom_item_types,omitempty"`
	StandardItemTypes          json.RawMessage `json:"standard_item_types,omitempty"`
	BackgroundCheckPermissions string          `json:"background_check_permissions"`
	CommentPermissions         string          `json:"comment_permissions"`
	Frequency                  string          `json:"frequency"`
	LastPlanFrom               string          `json:"last_plan_from"`
}

type ServiceTypeRelationships struct {
	Parent *FolderRef `json:"parent,omitempty"`
}

// Plan is a single plan within a service type.
type Plan struct {
	ID            pco.ID            `json:"id"`
	Attributes    PlanAttributes    `json:"attributes"`
	Relationships PlanRelationships `json:"relationships"`

	PlanTimes []PlanTime `json:"plan_times,omitempty"`
	Series    *Series    `json:"series,omitempty"`
}

type PlanAttributes struct {
	CanViewOrder         bool       `json:"can_view_order"`
	PrefersOrderView     bool       `json:"prefers_order_view"`
	Rehearsable          bool       `json:"rehearsable"`
	ItemsCount           int        `json:"items_count"`
	Permissions          string     `json:"permissions"`
	CreatedAt            time.Time  `json:"created_at"`
	Title                *string    `json:"title"`
	UpdatedAt            time.Time  `json:"updated_at"`
	Public               bool       `json:"public"`
	SeriesTitle          *string    `json:"series_title"`
	PlanNotesCount       int        `json:"plan_notes_count"`
	OtherTimeCount       int        `json:"other_time_count"`
	RehearsalTimeCount   int        `json:"rehearsal_time_count"`
	ServiceTimeCount     int        `json:"service_time_count"`
	PlanPeopleCount      int        `json:"plan_people_count"`
	NeededPositionsCount int        `json:"needed_positions_count"`
	TotalLength          int        `json:"total_length"`
	MultiDay             bool       `json:"multi_day"`
	FilesExpireAt        *time.Time `json:"files_expire_at"`
	SortDate             *time.Time `json:"sort_date"`
	LastTimeAt           *time.Time `json:"last_time_at"`
	Dates                string     `json:"dates"`
	ShortDates           string     `json:"short_dates"`
	PlanningCenterURL    string     `json:"planning_center_url"`
	RemindersDisabled    bool       `json:"reminders_disabled"`
}

type PlanRelationships struct {
	ServiceType  ServiceTypeRef `json:"service_type"`
	PreviousPlan *PlanRef       `json:"previous_plan,omitempty"`
	NextPlan     *PlanRef       `json:"next_plan,omitempty"`
	Series       *SeriesRef     `json:"series,omitempty"`
	CreatedBy    *PersonRef     `json:"created_by,omitempty"`
	UpdatedBy    *PersonRef     `json:"updated_by,omitempty"`
}

// Time types of a PlanTime.
const (
	TimeTypeRehearsal = "rehearsal"
	TimeTypeService   = "service"
	TimeTypeOther     = "other"
)

// PlanTime is a service, rehearsal or other time of a plan.
type PlanTime struct {
	ID            pco.ID                `json:"id"`
	Attributes    PlanTimeAttributes    `json:"attributes"`
	Relationships PlanTimeRelationships `json:"relationships"`
}

type PlanTimeAttributes struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      *string   `json:"name"`
	TimeType  string    `json:"time_type"`
	Recorded  bool      `json:"recorded"`

	// TeamReminders maps teams to the number of days before this time a
	// reminder is sent.
	TeamReminders []TeamReminder `json:"team_reminders"`

	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       time.Time  `json:"ends_at"`
	LiveStartsAt *time.Time `json:"live_starts_at"`
	LiveEndsAt   *time.Time `json:"live_ends_at"`
}

type PlanTimeRelationships struct {
	AssignedTeams                 []TeamRef                         `json:"assigned_teams,omitempty"`
	SplitTeamRehearsalAssignments []SplitTeamRehearsalAssignmentRef `json:"split_team_rehearsal_assignments,omitempty"`
}

// TeamReminder is a reminder sent to a team Value days before a plan time.
type TeamReminder struct {
	TeamID pco.ID `json:"team_id"`
	Value  int    `json:"value" validate:"min=0,max=7"`
}

// PlanTemplate is a template new plans can be created from.
type PlanTemplate struct {
	ID            pco.ID                    `json:"id"`
	Attributes    PlanTemplateAttributes    `json:"attributes"`
	Relationships PlanTemplateRelationships `json:"relationships"`
}

type PlanTemplateAttributes struct {
	Name             string     `json:"name"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
	ItemCount        int        `json:"item_count"`
	TeamCount        int        `json:"team_count"`
	NoteCount        int        `json:"note_count"`
	CanViewOrder     bool       `json:"can_view_order"`
	MultiDay         bool       `json:"multi_day"`
	Rehearsable      bool       `json:"rehearsable"`
	PrefersOrderView bool       `json:"prefers_order_view"`
}

type PlanTemplateRelationships struct {
	ServiceType ServiceTypeRef `json:"service_type"`
	CreatedBy   *PersonRef     `json:"created_by,omitempty"`
	UpdatedBy   *PersonRef     `json:"updated_by,omitempty"`
}

// PlanNote is a note attached to a plan.
type PlanNote struct {
	ID            pco.ID                `json:"id"`
	Attributes    PlanNoteAttributes    `json:"attributes"`
	Relationships PlanNoteRelationships `json:"relationships"`
}

type PlanNoteAttributes struct {
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	CategoryName string     `json:"category_name"`
	Content      string     `json:"content"`
}

type PlanNoteRelationships struct {
	CreatedBy        *PersonRef           `json:"created_by,omitempty"`
	PlanNoteCategory *PlanNoteCategoryRef `json:"plan_note_category,omitempty"`
	Teams            []TeamRef            `json:"teams,omitempty"`
}

// Statuses of a PlanPerson. The API sends either the short or long form.
const (
	StatusConfirmed   = "C"
	StatusUnconfirmed = "U"
	StatusDeclined    = "D"
)

// PlanPerson is a person scheduled in a plan.
type PlanPerson struct {
	ID            pco.ID                  `json:"id"`
	Attributes    PlanPersonAttributes    `json:"attributes"`
	Relationships PlanPersonRelationships `json:"relationships"`

	Person *Person `json:"person,omitempty"`
	Team   *Team   `json:"team,omitempty"`
}

type PlanPersonAttributes struct {
	Status                    string     `json:"status"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
	Notes                     *string    `json:"notes"`
	DeclineReason             *string    `json:"decline_reason"`
	Name                      string     `json:"name"`
	NotificationChangedByName *string    `json:"notification_changed_by_name"`
	NotificationSenderName    *string    `json:"notification_sender_name"`
	TeamPositionName          string     `json:"team_position_name"`
	PhotoThumbnail            string     `json:"photo_thumbnail"`
	ScheduledByName           *string    `json:"scheduled_by_name,omitempty"`
	StatusUpdatedAt           *time.Time `json:"status_updated_at,omitempty"`
	NotificationChangedAt     *time.Time `json:"notification_changed_at,omitempty"`
	NotificationPreparedAt    *time.Time `json:"notification_prepared_at,omitempty"`
	NotificationReadAt        *time.Time `json:"notification_read_at,omitempty"`
	NotificationSentAt        *time.Time `json:"notification_sent_at,omitempty"`
	PrepareNotification       bool       `json:"prepare_notification"`
	CanAcceptPartial          bool       `json:"can_accept_partial"`
}

// Confirmed reports whether the person accepted.
func (a PlanPersonAttributes) Confirmed() bool {
	return a.Status == StatusConfirmed || a.Status == "Confirmed"
}

// Declined reports whether the person declined.
func (a PlanPersonAttributes) Declined() bool {
	return a.Status == StatusDeclined || a.Status == "Declined"
}

type PlanPersonRelationships struct {
	Person                PersonRef                 `json:"person"`
	Plan                  PlanRef                   `json:"plan"`
	ScheduledBy           *PersonRef                `json:"scheduled_by,omitempty"`
	ServiceType           ServiceTypeRef            `json:"service_type"`
	Team                  TeamRef                   `json:"team"`
	RespondsTo            *PersonRef                `json:"responds_to,omitempty"`
	Times                 []PlanTimeRef             `json:"times,omitempty"`
	TimePreferenceOptions []TimePreferenceOptionRef `json:"time_preference_options,omitempty"`
}

// NeededPosition is a number of unfilled positions of a team in a plan.
type NeededPosition struct {
	ID            pco.ID                      `json:"id"`
	Attributes    NeededPositionAttributes    `json:"attributes"`
	Relationships NeededPositionRelationships `json:"relationships"`
}

type NeededPositionAttributes struct {
	Quantity         int    `json:"quantity"`
	TeamPositionName string `json:"team_position_name"`
	ScheduledTo      string `json:"scheduled_to"`
}

type NeededPositionRelationships struct {
	Team                 TeamRef                  `json:"team"`
	Plan                 PlanRef                  `json:"plan"`
	Time                 *PlanTimeRef             `json:"time,omitempty"`
	TimePreferenceOption *TimePreferenceOptionRef `json:"time_preference_option,omitempty"`
}

// Team is a team within a service type.
type Team struct {
	ID            pco.ID            `json:"id"`
	Attributes    TeamAttributes    `json:"attributes"`
	Relationships TeamRelationships `json:"relationships"`

	People                        []Person                       `json:"people,omitempty"`
	PersonTeamPositionAssignments []PersonTeamPositionAssignment `json:"person_team_position_assignments,omitempty"`
	ServiceType                   *ServiceType                   `json:"service_type,omitempty"`
	TeamLeaders                   []Person                       `json:"team_leaders,omitempty"`
	TeamPositions                 []TeamPosition                 `json:"team_positions,omitempty"`
}

type TeamAttributes struct {
	Name                        string     `json:"name"`
	RehearsalTeam               bool       `json:"rehearsal_team"`
	Sequence                    *int       `json:"sequence"`
	ScheduleTo                  string     `json:"schedule_to"`
	DefaultStatus               string     `json:"default_status"`
	DefaultPrepareNotifications bool       `json:"default_prepare_notifications"`
	CreatedAt                   time.Time  `json:"created_at"`
	UpdatedAt                   time.Time  `json:"updated_at"`
	ArchivedAt                  *time.Time `json:"archived_at"`
	ViewersSee                  int        `json:"viewers_see"`
	AssignedDirectly            bool       `json:"assigned_directly"`
	SecureTeam                  bool       `json:"secure_team"`
	LastPlanFrom                string     `json:"last_plan_from"`
	StageColor                  string     `json:"stage_color"`
	StageVariant                *string    `json:"stage_variant"`
}

// SplitTeam reports whether members are scheduled per time rather than per
// plan.
func (a TeamAttributes) SplitTeam() bool {
	return a.ScheduleTo == "time"
}

type TeamRelationships struct {
	ServiceType                   *ServiceTypeRef                   `json:"service_type,omitempty"`
	DefaultRespondsTo             *PersonRef                        `json:"default_responds_to,omitempty"`
	PersonTeamPositionAssignments []PersonTeamPositionAssignmentRef `json:"person_team_position_assignments,omitempty"`
	TeamPositions                 []TeamPositionRef                 `json:"team_positions,omitempty"`
	People                        []PersonRef                       `json:"people,omitempty"`
	TeamLeaders                   []PersonRef                       `json:"team_leaders,omitempty"`
}

// TeamPosition is a position people can fill on a team.
type TeamPosition struct {
	ID            pco.ID                    `json:"id"`
	Attributes    TeamPositionAttributes    `json:"attributes"`
	Relationships TeamPositionRelationships `json:"relationships"`
}

type TeamPositionAttributes struct {
	Name              string              `json:"name"`
	Sequence          *int                `json:"sequence,omitempty"`
	Tags              []map[string]string `json:"tags,omitempty"`
	NegativeTagGroups []map[string]string `json:"negative_tag_groups,omitempty"`
	TagGroups         []map[string]string `json:"tag_groups,omitempty"`
}

type TeamPositionRelationships struct {
	Team            *TeamRef            `json:"team,omitempty"`
	AttachmentTypes []AttachmentTypeRef `json:"attachment_types,omitempty"`
	Tags            []TagRef            `json:"tags,omitempty"`
}

// PersonTeamPositionAssignment assigns a person to a position on a team.
type PersonTeamPositionAssignment struct {
	ID            pco.ID                                    `json:"id"`
	Attributes    PersonTeamPositionAssignmentAttributes    `json:"attributes"`
	Relationships PersonTeamPositionAssignmentRelationships `json:"relationships"`

	Person       *Person       `json:"person,omitempty"`
	TeamPosition *TeamPosition `json:"team_position,omitempty"`
}

type PersonTeamPositionAssignmentAttributes struct {
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
	SchedulePreference string     `json:"schedule_preference"`

	// PreferredWeeks lists the preferred weeks of the month when
	// SchedulePreference is "Choose Weeks".
	PreferredWeeks []json.Number `json:"preferred_weeks,omitempty"`
}

type PersonTeamPositionAssignmentRelationships struct {
	Person                PersonRef                 `json:"person"`
	TeamPosition          TeamPositionRef           `json:"team_position"`
	TimePreferenceOptions []TimePreferenceOptionRef `json:"time_preference_options,omitempty"`
}

// TimePreferenceOption is a service time a person can prefer to be
// scheduled to.
type TimePreferenceOption struct {
	ID         pco.ID                         `json:"id"`
	Attributes TimePreferenceOptionAttributes `json:"attributes"`
}

type TimePreferenceOptionAttributes struct {
	DayOfWeek   int       `json:"day_of_week"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Description string    `json:"description"`
	SortIndex   string    `json:"sort_index"`
	TimeType    string    `json:"time_type"`
	MinuteOfDay int       `json:"minute_of_day"`
	StartsAt    time.Time `json:"starts_at"`
}

// Series groups plans under a common title and artwork.
type Series struct {
	ID         pco.ID           `json:"id"`
	Attributes SeriesAttributes `json:"attributes"`
}

type SeriesAttributes struct {
	Title               string     `json:"title"`
	ArtworkFileName     *string    `json:"artwork_file_name"`
	ArtworkContentType  *string    `json:"artwork_content_type"`
	ArtworkFileSize     *int64     `json:"artwork_file_size"`
	ArtworkForDashboard *string    `json:"artwork_for_dashboard"`
	ArtworkForMobile    *string    `json:"artwork_for_mobile"`
	ArtworkForPlan      *string    `json:"artwork_for_plan"`
	ArtworkOriginal     *string    `json:"artwork_original"`
	HasArtwork          bool       `json:"has_artwork"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
}
