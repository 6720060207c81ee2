package mapper

import (
	"time"

	"github.com/startender/tender-api/internal/domain"
)

const isoTimestamp = "2006-01-02T15:04:05Z"

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(isoTimestamp)
	return &s
}

func relatedRef(id *uint, kind *domain.RelatedKind) *domain.RelatedRef {
	if id == nil || kind == nil {
		return nil
	}
	return &domain.RelatedRef{Kind: *kind, ID: *id}
}

// ToUserDTO converts User to UserDTO
func ToUserDTO(user *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt.Format(isoTimestamp),
		UpdatedAt: user.UpdatedAt.Format(isoTimestamp),
	}
}

// ToLeadDTO converts Lead to LeadDTO
func ToLeadDTO(lead *domain.Lead) domain.LeadDTO {
	return domain.LeadDTO{
		ID:           lead.ID,
		Name:         lead.Name,
		Company:      lead.Company,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Source:       lead.Source,
		Status:       lead.Status,
		Value:        lead.Value,
		AssignedToID: lead.AssignedToID,
		Notes:        lead.Notes,
		CreatedAt:    lead.CreatedAt.Format(isoTimestamp),
		UpdatedAt:    lead.UpdatedAt.Format(isoTimestamp),
	}
}

// ToTenderDTO converts Tender to TenderDTO
func ToTenderDTO(tender *domain.Tender) domain.TenderDTO {
	requirements := []string(tender.Requirements)
	if requirements == nil {
		requirements = []string{}
	}

	return domain.TenderDTO{
		ID:             tender.ID,
		Title:          tender.Title,
		Reference:      tender.Reference,
		Client:         tender.Client,
		Value:          tender.Value,
		Deadline:       formatDatePtr(tender.Deadline),
		SubmissionDate: formatDatePtr(tender.SubmissionDate),
		Status:         tender.Status,
		Probability:    tender.Probability,
		Requirements:   requirements,
		CreatedAt:      tender.CreatedAt.Format(isoTimestamp),
		UpdatedAt:      tender.UpdatedAt.Format(isoTimestamp),
	}
}

// ToProjectDTO converts Project to ProjectDTO
func ToProjectDTO(project *domain.Project) domain.ProjectDTO {
	return domain.ProjectDTO{
		ID:        project.ID,
		Name:      project.Name,
		Client:    project.Client,
		Value:     project.Value,
		StartDate: formatDatePtr(project.StartDate),
		EndDate:   formatDatePtr(project.EndDate),
		Status:    project.Status,
		Progress:  project.Progress,
		TenderID:  project.TenderID,
		CreatedAt: project.CreatedAt.Format(isoTimestamp),
		UpdatedAt: project.UpdatedAt.Format(isoTimestamp),
	}
}

// ToMilestoneDTO converts Milestone to MilestoneDTO
func ToMilestoneDTO(milestone *domain.Milestone) domain.MilestoneDTO {
	return domain.MilestoneDTO{
		ID:            milestone.ID,
		ProjectID:     milestone.ProjectID,
		Title:         milestone.Title,
		DueDate:       formatDatePtr(milestone.DueDate),
		CompletedDate: formatDatePtr(milestone.CompletedDate),
		Status:        milestone.Status,
		CreatedAt:     milestone.CreatedAt.Format(isoTimestamp),
		UpdatedAt:     milestone.UpdatedAt.Format(isoTimestamp),
	}
}

// ToDocumentDTO converts Document to DocumentDTO
func ToDocumentDTO(document *domain.Document) domain.DocumentDTO {
	return domain.DocumentDTO{
		ID:           document.ID,
		Title:        document.Title,
		Type:         document.Type,
		FilePath:     document.FilePath,
		FileSize:     document.FileSize,
		FileType:     document.FileType,
		Status:       document.Status,
		RelatedTo:    relatedRef(document.RelatedToID, document.RelatedToType),
		UploadedByID: document.UploadedByID,
		CreatedAt:    document.CreatedAt.Format(isoTimestamp),
		UpdatedAt:    document.UpdatedAt.Format(isoTimestamp),
	}
}

// ToActivityDTO converts Activity to ActivityDTO
func ToActivityDTO(activity *domain.Activity) domain.ActivityDTO {
	return domain.ActivityDTO{
		ID:            activity.ID,
		Title:         activity.Title,
		Type:          activity.Type,
		ActionType:    activity.ActionType,
		PerformedByID: activity.PerformedByID,
		RelatedTo:     relatedRef(activity.RelatedToID, activity.RelatedToType),
		CreatedAt:     activity.CreatedAt.Format(isoTimestamp),
	}
}

// ToAuditLogDTO converts AuditLog to AuditLogDTO
func ToAuditLogDTO(log *domain.AuditLog) domain.AuditLogDTO {
	return domain.AuditLogDTO{
		ID:          log.ID,
		LogID:       log.LogID,
		UserID:      log.UserID,
		Action:      log.Action,
		ResourceID:  log.ResourceID,
		Description: log.Description,
		Timestamp:   log.Timestamp.Format(isoTimestamp),
	}
}

// ToOEMDTO converts OEM to OEMDTO, including any loaded documents
func ToOEMDTO(oem *domain.OEM) domain.OEMDTO {
	var documents []domain.OEMDocumentDTO
	if len(oem.Documents) > 0 {
		documents = make([]domain.OEMDocumentDTO, len(oem.Documents))
		for i, doc := range oem.Documents {
			documents[i] = ToOEMDocumentDTO(&doc)
		}
	}

	return domain.OEMDTO{
		ID:                 oem.ID,
		CompanyName:        oem.CompanyName,
		RegistrationNumber: oem.RegistrationNumber,
		PANNumber:          oem.PANNumber,
		GSTNumber:          oem.GSTNumber,
		ContactPerson:      oem.ContactPerson,
		Email:              oem.Email,
		Phone:              oem.Phone,
		Address:            oem.Address,
		OEMStatus:          oem.OEMStatus,
		Documents:          documents,
		CreatedAt:          oem.CreatedAt.Format(isoTimestamp),
		UpdatedAt:          oem.UpdatedAt.Format(isoTimestamp),
	}
}

// ToOEMDocumentDTO converts OEMDocument to OEMDocumentDTO
func ToOEMDocumentDTO(doc *domain.OEMDocument) domain.OEMDocumentDTO {
	return domain.OEMDocumentDTO{
		ID:           doc.ID,
		OEMID:        doc.OEMID,
		DocumentType: doc.DocumentType,
		FileName:     doc.FileName,
		FilePath:     doc.FilePath,
		FileSize:     doc.FileSize,
		FileType:     doc.FileType,
		CreatedAt:    doc.CreatedAt.Format(isoTimestamp),
		UpdatedAt:    doc.UpdatedAt.Format(isoTimestamp),
	}
}
