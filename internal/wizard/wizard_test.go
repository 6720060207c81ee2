package wizard_test

import (
	"testing"

	"github.com/startender/tender-api/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDetails() wizard.BasicDetails {
	return wizard.BasicDetails{
		ParticipatingCompany: "CompanyX",
		TenderName:           "Road Works",
		TenderID:             "T-1",
		ClientName:           "City Council",
		DeliveryLocation:     "Oslo",
		PublishDate:          "2026-01-10",
		EndDate:              "2026-02-10",
	}
}

func TestWizard_StartsAtBasicDetails(t *testing.T) {
	w := wizard.New()

	assert.Equal(t, wizard.StepBasicDetails, w.Step)
	assert.Empty(t, w.DocumentSets)
}

func TestWizard_NextBlockedUntilBasicDetailsComplete(t *testing.T) {
	w := wizard.New()

	// Empty form
	assert.False(t, w.Next())
	assert.Equal(t, wizard.StepBasicDetails, w.Step)

	// Each required field missing in turn
	fields := []func(*wizard.BasicDetails){
		func(d *wizard.BasicDetails) { d.ParticipatingCompany = "" },
		func(d *wizard.BasicDetails) { d.TenderName = "" },
		func(d *wizard.BasicDetails) { d.TenderID = "" },
		func(d *wizard.BasicDetails) { d.ClientName = "" },
		func(d *wizard.BasicDetails) { d.DeliveryLocation = "" },
		func(d *wizard.BasicDetails) { d.PublishDate = "" },
		func(d *wizard.BasicDetails) { d.EndDate = "" },
	}
	for _, clear := range fields {
		w.BasicDetails = completeDetails()
		clear(&w.BasicDetails)
		assert.False(t, w.Next())
		assert.Equal(t, wizard.StepBasicDetails, w.Step)
	}

	// Fully filled form advances
	w.BasicDetails = completeDetails()
	assert.True(t, w.Next())
	assert.Equal(t, wizard.StepDocumentUpload, w.Step)
}

func TestWizard_FirstDocumentSetCreatedLazily(t *testing.T) {
	w := wizard.New()
	w.BasicDetails = completeDetails()

	require.True(t, w.Next())

	// Entering the upload step creates the first blank set
	require.Len(t, w.DocumentSets, 1)
	current := w.CurrentSet()
	require.NotNil(t, current)
	assert.Empty(t, current.Name)
	assert.Empty(t, current.Documents)

	// Re-entering does not create another
	require.True(t, w.Back())
	require.True(t, w.Next())
	assert.Len(t, w.DocumentSets, 1)
}

func TestWizard_NextFromUploadRequiresASet(t *testing.T) {
	w := wizard.New()
	w.BasicDetails = completeDetails()
	require.True(t, w.Next())

	assert.True(t, w.Next())
	assert.Equal(t, wizard.StepPreviewExport, w.Step)

	// Final step has nowhere to go
	assert.False(t, w.Next())
	assert.Equal(t, wizard.StepPreviewExport, w.Step)
}

func TestWizard_GoToIsUnguarded(t *testing.T) {
	w := wizard.New()

	// Jump straight to preview with nothing filled in
	assert.True(t, w.GoTo(wizard.StepPreviewExport))
	assert.Equal(t, wizard.StepPreviewExport, w.Step)

	assert.True(t, w.GoTo(wizard.StepDocumentUpload))
	assert.Equal(t, wizard.StepDocumentUpload, w.Step)

	// Unknown step is rejected and state is unchanged
	assert.False(t, w.GoTo(wizard.Step("summary")))
	assert.Equal(t, wizard.StepDocumentUpload, w.Step)
}

func TestWizard_Back(t *testing.T) {
	w := wizard.New()
	w.BasicDetails = completeDetails()
	require.True(t, w.Next())
	require.True(t, w.Next())

	assert.True(t, w.Back())
	assert.Equal(t, wizard.StepDocumentUpload, w.Step)
	assert.True(t, w.Back())
	assert.Equal(t, wizard.StepBasicDetails, w.Step)
	assert.False(t, w.Back())
}

func TestWizard_AddSetAndSelect(t *testing.T) {
	w := wizard.New()

	first := w.AddSet()
	first.Name = "Technical Docs"
	second := w.AddSet()
	second.Name = "Financial Docs"

	require.Len(t, w.DocumentSets, 2)
	assert.Equal(t, "Financial Docs", w.CurrentSet().Name)

	assert.True(t, w.SelectSet(0))
	assert.Equal(t, "Technical Docs", w.CurrentSet().Name)

	assert.False(t, w.SelectSet(2))
	assert.False(t, w.SelectSet(-1))
	assert.Equal(t, "Technical Docs", w.CurrentSet().Name)
}

func TestWizard_CurrentSetNilWhenEmpty(t *testing.T) {
	w := wizard.New()
	assert.Nil(t, w.CurrentSet())
}

func TestDocumentSet_AddTagDeduplicates(t *testing.T) {
	var set wizard.DocumentSet

	set.AddTag("urgent")
	set.AddTag("civil")
	set.AddTag("urgent")
	set.AddTag("urgent")

	assert.Equal(t, []string{"urgent", "civil"}, set.Tags)
}

func TestDocumentSet_AddTagIgnoresEmpty(t *testing.T) {
	var set wizard.DocumentSet

	set.AddTag("")
	assert.Empty(t, set.Tags)
}

func TestDocumentSet_RemoveTagRemovesFirstMatch(t *testing.T) {
	set := wizard.DocumentSet{Tags: []string{"a", "b", "c"}}

	set.RemoveTag("b")
	assert.Equal(t, []string{"a", "c"}, set.Tags)

	// Removing an absent tag is a no-op
	set.RemoveTag("missing")
	assert.Equal(t, []string{"a", "c"}, set.Tags)
}

func TestDocumentSet_Complete(t *testing.T) {
	set := wizard.DocumentSet{}
	assert.False(t, set.Complete())

	set.Name = "Road Works Docs"
	assert.False(t, set.Complete())

	set.Company = "CompanyX"
	assert.True(t, set.Complete())
}

func TestDocumentSet_AddDocument(t *testing.T) {
	var set wizard.DocumentSet

	set.AddDocument(wizard.DocumentFile{Name: "plan.pdf", MimeType: "application/pdf"})
	set.AddDocument(wizard.DocumentFile{Name: "plan.pdf", MimeType: "application/pdf"})

	// Duplicates are allowed at this stage
	assert.Len(t, set.Documents, 2)
}
