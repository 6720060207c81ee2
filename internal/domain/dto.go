package domain

// DTOs for API responses. Timestamps are ISO 8601 strings.

type UserDTO struct {
	ID        uint     `json:"id"`
	Username  string   `json:"username"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	Active    bool     `json:"active"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type LeadDTO struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Company      string     `json:"company"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Source       LeadSource `json:"source"`
	Status       LeadStatus `json:"status"`
	Value        float64    `json:"value"`
	AssignedToID *uint      `json:"assignedToId,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

type TenderDTO struct {
	ID             uint         `json:"id"`
	Title          string       `json:"title"`
	Reference      string       `json:"reference"`
	Client         string       `json:"client"`
	Value          float64      `json:"value"`
	Deadline       *string      `json:"deadline,omitempty"`       // ISO 8601
	SubmissionDate *string      `json:"submissionDate,omitempty"` // ISO 8601
	Status         TenderStatus `json:"status"`
	Probability    int          `json:"probability"`
	Requirements   []string     `json:"requirements"`
	CreatedAt      string       `json:"createdAt"`
	UpdatedAt      string       `json:"updatedAt"`
}

type ProjectDTO struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Client    string        `json:"client"`
	Value     float64       `json:"value"`
	StartDate *string       `json:"startDate,omitempty"` // ISO 8601
	EndDate   *string       `json:"endDate,omitempty"`   // ISO 8601
	Status    ProjectStatus `json:"status"`
	Progress  int           `json:"progress"`
	TenderID  *uint         `json:"tenderId,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

type MilestoneDTO struct {
	ID            uint            `json:"id"`
	ProjectID     uint            `json:"projectId"`
	Title         string          `json:"title"`
	DueDate       *string         `json:"dueDate,omitempty"`       // ISO 8601
	CompletedDate *string         `json:"completedDate,omitempty"` // ISO 8601
	Status        MilestoneStatus `json:"status"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

type DocumentDTO struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Type          DocumentType   `json:"type"`
	FilePath      string         `json:"filePath"`
	FileSize      int64          `json:"fileSize"`
	FileType      string         `json:"fileType,omitempty"`
	Status        DocumentStatus `json:"status"`
	RelatedTo     *RelatedRef    `json:"relatedTo,omitempty"`
	UploadedByID  *uint          `json:"uploadedById,omitempty"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

type ActivityDTO struct {
	ID            uint        `json:"id"`
	Title         string      `json:"title"`
	Type          string      `json:"type"`
	ActionType    string      `json:"actionType"`
	PerformedByID *uint       `json:"performedById,omitempty"`
	RelatedTo     *RelatedRef `json:"relatedTo,omitempty"`
	CreatedAt     string      `json:"createdAt"`
}

type AuditLogDTO struct {
	ID          uint   `json:"id"`
	LogID       string `json:"logId"`
	UserID      *uint  `json:"userId,omitempty"`
	Action      string `json:"action"`
	ResourceID  string `json:"resourceId,omitempty"`
	Description string `json:"description,omitempty"`
	Timestamp   string `json:"timestamp"` // ISO 8601
}

type OEMDTO struct {
	ID                 uint             `json:"id"`
	CompanyName        string           `json:"companyName"`
	RegistrationNumber string           `json:"registrationNumber,omitempty"`
	PANNumber          string           `json:"panNumber,omitempty"`
	GSTNumber          string           `json:"gstNumber,omitempty"`
	ContactPerson      string           `json:"contactPerson,omitempty"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone,omitempty"`
	Address            string           `json:"address,omitempty"`
	OEMStatus          OEMStatus        `json:"oemStatus"`
	Documents          []OEMDocumentDTO `json:"documents,omitempty"`
	CreatedAt          string           `json:"createdAt"`
	UpdatedAt          string           `json:"updatedAt"`
}

type OEMDocumentDTO struct {
	ID           uint   `json:"id"`
	OEMID        uint   `json:"oemId"`
	DocumentType string `json:"documentType"`
	FileName     string `json:"fileName"`
	FilePath     string `json:"filePath"`
	FileSize     int64  `json:"fileSize"`
	FileType     string `json:"fileType,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// MessageResponse confirms a completed operation, e.g. a delete
type MessageResponse struct {
	Message string `json:"message"`
}

// Request DTOs

type CreateUserRequest struct {
	Username string   `json:"username" validate:"required,max=100"`
	FullName string   `json:"fullName" validate:"required,max=200"`
	Email    string   `json:"email" validate:"required,email,max=255"`
	Role     UserRole `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Username string   `json:"username" validate:"required,max=100"`
	FullName string   `json:"fullName" validate:"required,max=200"`
	Email    string   `json:"email" validate:"required,email,max=255"`
	Role     UserRole `json:"role,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}

type CreateLeadRequest struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Company      string     `json:"company" validate:"required,max=200"`
	Email        string     `json:"email" validate:"required,email,max=255"`
	Phone        string     `json:"phone,omitempty" validate:"max=50"`
	Source       LeadSource `json:"source,omitempty"`
	Status       LeadStatus `json:"status,omitempty"`
	Value        float64    `json:"value,omitempty" validate:"gte=0"`
	AssignedToID *uint      `json:"assignedToId,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type UpdateLeadRequest struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Company      string     `json:"company" validate:"required,max=200"`
	Email        string     `json:"email" validate:"required,email,max=255"`
	Phone        string     `json:"phone,omitempty" validate:"max=50"`
	Source       LeadSource `json:"source,omitempty"`
	Status       LeadStatus `json:"status,omitempty"`
	Value        float64    `json:"value,omitempty" validate:"gte=0"`
	AssignedToID *uint      `json:"assignedToId,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type CreateTenderRequest struct {
	Title          string       `json:"title" validate:"required,max=200"`
	Reference      string       `json:"reference" validate:"required,max=100"`
	Client         string       `json:"client" validate:"required,max=200"`
	Value          float64      `json:"value,omitempty" validate:"gte=0"`
	Deadline       *string      `json:"deadline,omitempty"`
	SubmissionDate *string      `json:"submissionDate,omitempty"`
	Status         TenderStatus `json:"status,omitempty"`
	Probability    int          `json:"probability,omitempty" validate:"gte=0,lte=100"`
	Requirements   []string     `json:"requirements,omitempty"`
}

type UpdateTenderRequest struct {
	Title          string       `json:"title" validate:"required,max=200"`
	Reference      string       `json:"reference" validate:"required,max=100"`
	Client         string       `json:"client" validate:"required,max=200"`
	Value          float64      `json:"value,omitempty" validate:"gte=0"`
	Deadline       *string      `json:"deadline,omitempty"`
	SubmissionDate *string      `json:"submissionDate,omitempty"`
	Status         TenderStatus `json:"status,omitempty"`
	Probability    int          `json:"probability,omitempty" validate:"gte=0,lte=100"`
	Requirements   []string     `json:"requirements,omitempty"`
}

type CreateProjectRequest struct {
	Name      string        `json:"name" validate:"required,max=200"`
	Client    string        `json:"client" validate:"required,max=200"`
	Value     float64       `json:"value,omitempty" validate:"gte=0"`
	StartDate *string       `json:"startDate,omitempty"`
	EndDate   *string       `json:"endDate,omitempty"`
	Status    ProjectStatus `json:"status,omitempty"`
	Progress  int           `json:"progress,omitempty" validate:"gte=0,lte=100"`
	TenderID  *uint         `json:"tenderId,omitempty"`
}

type UpdateProjectRequest struct {
	Name      string        `json:"name" validate:"required,max=200"`
	Client    string        `json:"client" validate:"required,max=200"`
	Value     float64       `json:"value,omitempty" validate:"gte=0"`
	StartDate *string       `json:"startDate,omitempty"`
	EndDate   *string       `json:"endDate,omitempty"`
	Status    ProjectStatus `json:"status,omitempty"`
	Progress  int           `json:"progress,omitempty" validate:"gte=0,lte=100"`
	TenderID  *uint         `json:"tenderId,omitempty"`
}

type CreateMilestoneRequest struct {
	ProjectID     uint            `json:"projectId" validate:"required"`
	Title         string          `json:"title" validate:"required,max=200"`
	DueDate       *string         `json:"dueDate,omitempty"`
	CompletedDate *string         `json:"completedDate,omitempty"`
	Status        MilestoneStatus `json:"status,omitempty"`
}

type UpdateMilestoneRequest struct {
	Title         string          `json:"title" validate:"required,max=200"`
	DueDate       *string         `json:"dueDate,omitempty"`
	CompletedDate *string         `json:"completedDate,omitempty"`
	Status        MilestoneStatus `json:"status,omitempty"`
}

type CreateDocumentRequest struct {
	Title         string         `json:"title" validate:"required,max=200"`
	Type          DocumentType   `json:"type" validate:"required"`
	Status        DocumentStatus `json:"status,omitempty"`
	RelatedToID   *uint          `json:"relatedToId,omitempty"`
	RelatedToType *RelatedKind   `json:"relatedToType,omitempty"`
	UploadedByID  *uint          `json:"uploadedById,omitempty"`
}

type UpdateDocumentRequest struct {
	Title         string         `json:"title" validate:"required,max=200"`
	Type          DocumentType   `json:"type" validate:"required"`
	Status        DocumentStatus `json:"status,omitempty"`
	RelatedToID   *uint          `json:"relatedToId,omitempty"`
	RelatedToType *RelatedKind   `json:"relatedToType,omitempty"`
}

type CreateActivityRequest struct {
	Title         string       `json:"title" validate:"required,max=200"`
	Type          string       `json:"type" validate:"required,max=50"`
	ActionType    string       `json:"actionType" validate:"required,max=50"`
	PerformedByID *uint        `json:"performedById,omitempty"`
	RelatedToID   *uint        `json:"relatedToId,omitempty"`
	RelatedToType *RelatedKind `json:"relatedToType,omitempty"`
}

type CreateAuditLogRequest struct {
	UserID      *uint  `json:"userId,omitempty"`
	Action      string `json:"action" validate:"required,max=100"`
	ResourceID  string `json:"resourceId,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty"`
}

type CreateOEMRequest struct {
	CompanyName        string    `json:"companyName" validate:"required,max=200"`
	RegistrationNumber string    `json:"registrationNumber,omitempty" validate:"max=100"`
	PANNumber          string    `json:"panNumber,omitempty" validate:"max=50"`
	GSTNumber          string    `json:"gstNumber,omitempty" validate:"max=50"`
	ContactPerson      string    `json:"contactPerson,omitempty" validate:"max=200"`
	Email              string    `json:"email" validate:"required,email,max=255"`
	Phone              string    `json:"phone,omitempty" validate:"max=50"`
	Address            string    `json:"address,omitempty" validate:"max=500"`
	OEMStatus          OEMStatus `json:"oemStatus,omitempty"`
}

type UpdateOEMRequest struct {
	CompanyName        string    `json:"companyName" validate:"required,max=200"`
	RegistrationNumber string    `json:"registrationNumber,omitempty" validate:"max=100"`
	PANNumber          string    `json:"panNumber,omitempty" validate:"max=50"`
	GSTNumber          string    `json:"gstNumber,omitempty" validate:"max=50"`
	ContactPerson      string    `json:"contactPerson,omitempty" validate:"max=200"`
	Email              string    `json:"email" validate:"required,email,max=255"`
	Phone              string    `json:"phone,omitempty" validate:"max=50"`
	Address            string    `json:"address,omitempty" validate:"max=500"`
	OEMStatus          OEMStatus `json:"oemStatus,omitempty"`
}
