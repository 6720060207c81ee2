package domain

import (
	"time"

	"github.com/lib/pq"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleUser    UserRole = "user"
)

// IsValid checks if the UserRole is a valid enum value
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleUser:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	BaseModel
	Username string   `gorm:"type:varchar(100);not null;uniqueIndex"`
	FullName string   `gorm:"type:varchar(200);not null;column:full_name"`
	Email    string   `gorm:"type:varchar(255);not null"`
	Role     UserRole `gorm:"type:varchar(50);not null;default:'user'"`
	Active   bool     `gorm:"not null;default:true"`
}

// LeadSource represents where a lead originated from
type LeadSource string

const (
	LeadSourceWebsite    LeadSource = "website"
	LeadSourceReferral   LeadSource = "referral"
	LeadSourceColdCall   LeadSource = "cold_call"
	LeadSourceEmail      LeadSource = "email"
	LeadSourceExhibition LeadSource = "exhibition"
	LeadSourceOther      LeadSource = "other"
)

// IsValid checks if the LeadSource is a valid enum value
func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceReferral, LeadSourceColdCall, LeadSourceEmail, LeadSourceExhibition, LeadSourceOther:
		return true
	}
	return false
}

// LeadStatus represents the pipeline status of a lead.
// Status is free text in storage; membership is checked at the API
// boundary only and any status may follow any other.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusWon         LeadStatus = "won"
	LeadStatusLost        LeadStatus = "lost"
)

// IsValid checks if the LeadStatus is a valid enum value
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusQualified, LeadStatusProposal, LeadStatusNegotiation, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// Lead represents a prospective client opportunity prior to tender submission
type Lead struct {
	BaseModel
	Name         string     `gorm:"type:varchar(200);not null;index"`
	Company      string     `gorm:"type:varchar(200);not null"`
	Email        string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(50)"`
	Source       LeadSource `gorm:"type:varchar(50);not null;default:'other'"`
	Status       LeadStatus `gorm:"type:varchar(50);not null;default:'new';index"`
	Value        float64    `gorm:"type:decimal(15,2);not null;default:0"`
	AssignedToID *uint      `gorm:"column:assigned_to_id;index"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID"`
	Notes        string     `gorm:"type:text"`
}

// TenderStatus represents the status of a tender
type TenderStatus string

const (
	TenderStatusDraft      TenderStatus = "draft"
	TenderStatusSubmitted  TenderStatus = "submitted"
	TenderStatusEvaluation TenderStatus = "evaluation"
	TenderStatusWon        TenderStatus = "won"
	TenderStatusLost       TenderStatus = "lost"
)

// IsValid checks if the TenderStatus is a valid enum value
func (s TenderStatus) IsValid() bool {
	switch s {
	case TenderStatusDraft, TenderStatusSubmitted, TenderStatusEvaluation, TenderStatusWon, TenderStatusLost:
		return true
	}
	return false
}

// Tender represents a formal bid submitted in response to a client's RFP.
// A tender may conceptually reference a winning lead; the schema does not
// enforce it.
type Tender struct {
	BaseModel
	Title          string         `gorm:"type:varchar(200);not null;index"`
	Reference      string         `gorm:"type:varchar(100);not null;index"`
	Client         string         `gorm:"type:varchar(200);not null"`
	Value          float64        `gorm:"type:decimal(15,2);not null;default:0"`
	Deadline       *time.Time     `gorm:"type:date"`
	SubmissionDate *time.Time     `gorm:"type:date;column:submission_date"`
	Status         TenderStatus   `gorm:"type:varchar(50);not null;default:'draft';index"`
	Probability    int            `gorm:"type:int;not null;default:0"`
	Requirements   pq.StringArray `gorm:"type:text[]"`
}

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// IsValid checks if the ProjectStatus is a valid enum value
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project represents work won through a tender. TenderID is a weak
// back-reference with no existence check.
type Project struct {
	BaseModel
	Name       string        `gorm:"type:varchar(200);not null;index"`
	Client     string        `gorm:"type:varchar(200);not null"`
	Value      float64       `gorm:"type:decimal(15,2);not null;default:0"`
	StartDate  *time.Time    `gorm:"type:date;column:start_date"`
	EndDate    *time.Time    `gorm:"type:date;column:end_date"`
	Status     ProjectStatus `gorm:"type:varchar(50);not null;default:'planning';index"`
	Progress   int           `gorm:"type:int;not null;default:0"`
	TenderID   *uint         `gorm:"column:tender_id;index"`
	Milestones []Milestone   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// MilestoneStatus represents the status of a project milestone
type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "pending"
	MilestoneStatusCompleted MilestoneStatus = "completed"
	MilestoneStatusDelayed   MilestoneStatus = "delayed"
)

// IsValid checks if the MilestoneStatus is a valid enum value
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusCompleted, MilestoneStatusDelayed:
		return true
	}
	return false
}

// Milestone belongs to exactly one project
type Milestone struct {
	BaseModel
	ProjectID     uint            `gorm:"not null;index;column:project_id"`
	Project       *Project        `gorm:"foreignKey:ProjectID"`
	Title         string          `gorm:"type:varchar(200);not null"`
	DueDate       *time.Time      `gorm:"type:date;column:due_date"`
	CompletedDate *time.Time      `gorm:"type:date;column:completed_date"`
	Status        MilestoneStatus `gorm:"type:varchar(50);not null;default:'pending'"`
}

// RelatedKind represents the kind of entity a polymorphic reference points at
type RelatedKind string

const (
	RelatedKindLead    RelatedKind = "lead"
	RelatedKindTender  RelatedKind = "tender"
	RelatedKindProject RelatedKind = "project"
)

// IsValid checks if the RelatedKind is a valid enum value
func (k RelatedKind) IsValid() bool {
	switch k {
	case RelatedKindLead, RelatedKindTender, RelatedKindProject:
		return true
	}
	return false
}

// RelatedRef is a weak (kind, id) pair pointing at a lead, tender or
// project. Validated against the kind enum at the API boundary, never
// enforced by a foreign key.
type RelatedRef struct {
	Kind RelatedKind `json:"kind"`
	ID   uint        `json:"id"`
}

// DocumentType classifies an uploaded document
type DocumentType string

const (
	DocumentTypeKYC       DocumentType = "KYC"
	DocumentTypeBid       DocumentType = "BID"
	DocumentTypeContract  DocumentType = "CONTRACT"
	DocumentTypeMilestone DocumentType = "MILESTONE"
	DocumentTypeInvoice   DocumentType = "INVOICE"
)

// IsValid checks if the DocumentType is a valid enum value
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeKYC, DocumentTypeBid, DocumentTypeContract, DocumentTypeMilestone, DocumentTypeInvoice:
		return true
	}
	return false
}

// DocumentStatus represents the review status of a document
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// IsValid checks if the DocumentStatus is a valid enum value
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusApproved, DocumentStatusRejected:
		return true
	}
	return false
}

// Document represents an uploaded file with a weak polymorphic
// back-reference to a lead, tender or project
type Document struct {
	BaseModel
	Title         string         `gorm:"type:varchar(200);not null"`
	Type          DocumentType   `gorm:"type:varchar(50);not null"`
	FilePath      string         `gorm:"type:varchar(500);not null;column:file_path"`
	FileSize      int64          `gorm:"not null;default:0;column:file_size"`
	FileType      string         `gorm:"type:varchar(100);column:file_type"`
	Status        DocumentStatus `gorm:"type:varchar(50);not null;default:'pending'"`
	RelatedToID   *uint          `gorm:"column:related_to_id;index"`
	RelatedToType *RelatedKind   `gorm:"type:varchar(50);column:related_to_type"`
	UploadedByID  *uint          `gorm:"column:uploaded_by_id"`
	UploadedBy    *User          `gorm:"foreignKey:UploadedByID"`
}

// Activity represents an append-only event log entry. Immutable once
// created.
type Activity struct {
	ID            uint         `gorm:"primaryKey;autoIncrement"`
	Title         string       `gorm:"type:varchar(200);not null"`
	Type          string       `gorm:"type:varchar(50);not null"`
	ActionType    string       `gorm:"type:varchar(50);not null;column:action_type"`
	PerformedByID *uint        `gorm:"column:performed_by_id;index"`
	PerformedBy   *User        `gorm:"foreignKey:PerformedByID"`
	RelatedToID   *uint        `gorm:"column:related_to_id;index"`
	RelatedToType *RelatedKind `gorm:"type:varchar(50);column:related_to_type"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

// AuditLog represents an append-only audit trail entry. LogID is a
// server-generated unique token, distinct from the integer primary key.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	LogID       string    `gorm:"type:varchar(100);not null;uniqueIndex;column:log_id"`
	UserID      *uint     `gorm:"column:user_id;index"`
	Action      string    `gorm:"type:varchar(100);not null"`
	ResourceID  string    `gorm:"type:varchar(100);column:resource_id"`
	Description string    `gorm:"type:text"`
	Timestamp   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

// OEMStatus represents the verification status of an OEM vendor
type OEMStatus string

const (
	OEMStatusPending  OEMStatus = "pending"
	OEMStatusVerified OEMStatus = "verified"
	OEMStatusRejected OEMStatus = "rejected"
)

// IsValid checks if the OEMStatus is a valid enum value
func (s OEMStatus) IsValid() bool {
	switch s {
	case OEMStatusPending, OEMStatusVerified, OEMStatusRejected:
		return true
	}
	return false
}

// OEM represents an Original Equipment Manufacturer vendor record
type OEM struct {
	BaseModel
	CompanyName        string        `gorm:"type:varchar(200);not null;index;column:company_name"`
	RegistrationNumber string        `gorm:"type:varchar(100);column:registration_number"`
	PANNumber          string        `gorm:"type:varchar(50);column:pan_number"`
	GSTNumber          string        `gorm:"type:varchar(50);column:gst_number"`
	ContactPerson      string        `gorm:"type:varchar(200);column:contact_person"`
	Email              string        `gorm:"type:varchar(255);not null"`
	Phone              string        `gorm:"type:varchar(50)"`
	Address            string        `gorm:"type:varchar(500)"`
	OEMStatus          OEMStatus     `gorm:"type:varchar(50);not null;default:'pending';column:oem_status;index"`
	Documents          []OEMDocument `gorm:"foreignKey:OEMID;constraint:OnDelete:CASCADE"`
}

// OEMDocument represents a file uploaded against an OEM vendor
type OEMDocument struct {
	BaseModel
	OEMID        uint   `gorm:"not null;index;column:oem_id"`
	DocumentType string `gorm:"type:varchar(100);not null;column:document_type"`
	FileName     string `gorm:"type:varchar(255);not null;column:file_name"`
	FilePath     string `gorm:"type:varchar(500);not null;column:file_path"`
	FileSize     int64  `gorm:"not null;default:0;column:file_size"`
	FileType     string `gorm:"type:varchar(100);column:file_type"`
}

// TableName overrides the default table name
func (OEM) TableName() string {
	return "oems"
}

// TableName overrides the default table name
func (OEMDocument) TableName() string {
	return "oem_documents"
}
