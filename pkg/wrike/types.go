package wrike

// Typed views over records. The cache stores raw records; decode one with
// Record.Decode when a caller wants struct access. Dates are kept as the
// strings the API sends because their formats differ per field.

// Contact is a user, invitation or user group.
type Contact struct {
	ID          string           `json:"id"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	Type        string           `json:"type"`
	Profiles    []ContactProfile `json:"profiles,omitempty"`
	AvatarURL   string           `json:"avatarUrl,omitempty"`
	Timezone    string           `json:"timezone,omitempty"`
	Locale      string           `json:"locale,omitempty"`
	Deleted     bool             `json:"deleted"`
	Me          bool             `json:"me,omitempty"`
	Title       string           `json:"title,omitempty"`
	CompanyName string           `json:"companyName,omitempty"`
}

// ContactProfile is a contact's membership in one account.
type ContactProfile struct {
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	External  bool   `json:"external"`
	Admin     bool   `json:"admin"`
	Owner     bool   `json:"owner"`
}

// Name returns "First Last", trimmed when either part is empty.
func (c Contact) Name() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

// Folder is a folder or, when Project is set, a project.
type Folder struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Color        string             `json:"color,omitempty"`
	ChildIDs     []string           `json:"childIds,omitempty"`
	Scope        string             `json:"scope"`
	Project      *Project           `json:"project,omitempty"`
	Permalink    string             `json:"permalink,omitempty"`
	WorkflowID   string             `json:"workflowId,omitempty"`
	CreatedDate  string             `json:"createdDate,omitempty"`
	UpdatedDate  string             `json:"updatedDate,omitempty"`
	CustomFields []CustomFieldValue `json:"customFields,omitempty"`
}

// Project holds the project-specific part of a folder.
type Project struct {
	AuthorID       string   `json:"authorId,omitempty"`
	OwnerIDs       []string `json:"ownerIds,omitempty"`
	Status         string   `json:"status,omitempty"`
	CustomStatusID string   `json:"customStatusId,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	CreatedDate    string   `json:"createdDate,omitempty"`
	CompletedDate  string   `json:"completedDate,omitempty"`
}

// CustomFieldValue is a custom field set on a folder or task.
type CustomFieldValue struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// CustomField is an account-level custom field definition.
type CustomField struct {
	ID        string   `json:"id"`
	AccountID string   `json:"accountId"`
	Title     string   `json:"title"`
	Type      string   `json:"type"`
	SharedIDs []string `json:"sharedIds,omitempty"`
}

// Workflow is a named set of custom statuses.
type Workflow struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Standard       bool           `json:"standard"`
	Hidden         bool           `json:"hidden"`
	CustomStatuses []CustomStatus `json:"customStatuses"`
}

// CustomStatus is a workflow-scoped status definition.
type CustomStatus struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StandardName bool   `json:"standardName"`
	Color        string `json:"color"`
	Standard     bool   `json:"standard"`
	Group        string `json:"group"`
	Hidden       bool   `json:"hidden"`
}

// Task is a single work item.
type Task struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	Importance     string    `json:"importance"`
	CreatedDate    string    `json:"createdDate"`
	UpdatedDate    string    `json:"updatedDate"`
	CompletedDate  string    `json:"completedDate,omitempty"`
	Dates          TaskDates `json:"dates"`
	Scope          string    `json:"scope"`
	CustomStatusID string    `json:"customStatusId"`
	Permalink      string    `json:"permalink"`
	ParentIDs      []string  `json:"parentIds,omitempty"`
	ResponsibleIDs []string  `json:"responsibleIds,omitempty"`
}

// TaskDates is the scheduling block of a task.
type TaskDates struct {
	Type     string `json:"type"`
	Duration int    `json:"duration,omitempty"`
	Start    string `json:"start,omitempty"`
	Due      string `json:"due,omitempty"`
}

// Timelog is a time entry tracked against a task.
type Timelog struct {
	ID          string  `json:"id"`
	TaskID      string  `json:"taskId"`
	UserID      string  `json:"userId"`
	CategoryID  string  `json:"categoryId,omitempty"`
	Hours       float64 `json:"hours"`
	CreatedDate string  `json:"createdDate"`
	UpdatedDate string  `json:"updatedDate"`
	TrackedDate string  `json:"trackedDate"`
	Comment     string  `json:"comment,omitempty"`
}
