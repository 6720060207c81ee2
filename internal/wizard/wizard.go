// Package wizard implements the in-memory tender submission wizard: a
// three step state machine collecting basic details and named document
// sets, ending in a CSV export. Nothing here touches the backend; state
// lives only for the session and is discarded unless exported.
package wizard

// Step identifies a wizard screen
type Step string

const (
	StepBasicDetails   Step = "basic-details"
	StepDocumentUpload Step = "document-upload"
	StepPreviewExport  Step = "preview-export"
)

// IsValid checks if the Step is a valid enum value
func (s Step) IsValid() bool {
	switch s {
	case StepBasicDetails, StepDocumentUpload, StepPreviewExport:
		return true
	}
	return false
}

// BasicDetails holds the first step's form fields. Dates are ISO date
// strings; all seven fields must be non-empty before Next advances.
type BasicDetails struct {
	ParticipatingCompany string
	TenderName           string
	TenderID             string
	ClientName           string
	DeliveryLocation     string
	PublishDate          string
	EndDate              string
}

// Complete reports whether every required field is filled
func (d BasicDetails) Complete() bool {
	return d.ParticipatingCompany != "" &&
		d.TenderName != "" &&
		d.TenderID != "" &&
		d.ClientName != "" &&
		d.DeliveryLocation != "" &&
		d.PublishDate != "" &&
		d.EndDate != ""
}

// DocumentFile is an attached file reference. No dedup and no size or
// type checks happen at this stage.
type DocumentFile struct {
	Name     string
	MimeType string
	Path     string
}

// DocumentSet is a named, company-scoped bundle of files with free-text
// tags
type DocumentSet struct {
	Name      string
	Company   string
	Tags      []string
	Documents []DocumentFile
}

// Complete reports whether the set has its required name and company
func (s DocumentSet) Complete() bool {
	return s.Name != "" && s.Company != ""
}

// AddTag appends a tag unless an identical one is already present
func (s *DocumentSet) AddTag(tag string) {
	if tag == "" {
		return
	}
	for _, existing := range s.Tags {
		if existing == tag {
			return
		}
	}
	s.Tags = append(s.Tags, tag)
}

// RemoveTag removes the first matching tag, if any
func (s *DocumentSet) RemoveTag(tag string) {
	for i, existing := range s.Tags {
		if existing == tag {
			s.Tags = append(s.Tags[:i], s.Tags[i+1:]...)
			return
		}
	}
}

// AddDocument appends a file reference to the set
func (s *DocumentSet) AddDocument(doc DocumentFile) {
	s.Documents = append(s.Documents, doc)
}

// Wizard is the session state record. It is a plain value; callers own
// it and no two transitions run concurrently within one session.
type Wizard struct {
	Step         Step
	BasicDetails BasicDetails
	DocumentSets []DocumentSet
	CurrentIndex int
}

// New starts a wizard at the basic details step
func New() *Wizard {
	return &Wizard{Step: StepBasicDetails}
}

// Next advances to the following step. Leaving basic details requires a
// complete form; leaving document upload requires at least one set.
// Entering document upload with no sets creates the first one lazily.
func (w *Wizard) Next() bool {
	switch w.Step {
	case StepBasicDetails:
		if !w.BasicDetails.Complete() {
			return false
		}
		w.Step = StepDocumentUpload
		if len(w.DocumentSets) == 0 {
			w.AddSet()
		}
		return true
	case StepDocumentUpload:
		if len(w.DocumentSets) == 0 {
			return false
		}
		w.Step = StepPreviewExport
		return true
	}
	return false
}

// Back returns to the previous step
func (w *Wizard) Back() bool {
	switch w.Step {
	case StepDocumentUpload:
		w.Step = StepBasicDetails
		return true
	case StepPreviewExport:
		w.Step = StepDocumentUpload
		return true
	}
	return false
}

// GoTo jumps directly to any step with no completeness guard. The tab
// strip allows visiting the preview with incomplete data; the preview
// renders whatever is present.
func (w *Wizard) GoTo(step Step) bool {
	if !step.IsValid() {
		return false
	}
	w.Step = step
	return true
}

// AddSet appends a blank set and makes it current. There is no
// validation gate; the previous set may be incomplete.
func (w *Wizard) AddSet() *DocumentSet {
	w.DocumentSets = append(w.DocumentSets, DocumentSet{})
	w.CurrentIndex = len(w.DocumentSets) - 1
	return &w.DocumentSets[w.CurrentIndex]
}

// CurrentSet returns the set under edit, or nil when none exist
func (w *Wizard) CurrentSet() *DocumentSet {
	if w.CurrentIndex < 0 || w.CurrentIndex >= len(w.DocumentSets) {
		return nil
	}
	return &w.DocumentSets[w.CurrentIndex]
}

// SelectSet switches the current index if it is in range
func (w *Wizard) SelectSet(index int) bool {
	if index < 0 || index >= len(w.DocumentSets) {
		return false
	}
	w.CurrentIndex = index
	return true
}
