package seniority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/reconcile-cli/internal/model"
)

func TestClassify_CSuite(t *testing.T) {
	assert.Equal(t, model.SeniorityCSuite, Classify("Chief Technology Officer").Tier)
	assert.Equal(t, model.SeniorityCSuite, Classify("CEO").Tier)
	assert.Equal(t, model.SeniorityCSuite, Classify("President & COO").Tier)
}

func TestClassify_VP(t *testing.T) {
	assert.Equal(t, model.SeniorityVP, Classify("Vice President of Sales").Tier)
	assert.Equal(t, model.SeniorityVP, Classify("VP Engineering").Tier)
	assert.Equal(t, model.SeniorityVP, Classify("SVP, Marketing").Tier)
}

func TestClassify_Head(t *testing.T) {
	assert.Equal(t, model.SeniorityHead, Classify("Head of Product").Tier)
}

func TestClassify_Director(t *testing.T) {
	assert.Equal(t, model.SeniorityDir, Classify("Director of Operations").Tier)
}

func TestClassify_Manager(t *testing.T) {
	assert.Equal(t, model.SeniorityManager, Classify("Account Manager").Tier)
	assert.Equal(t, model.SeniorityManager, Classify("Sales Mgr").Tier)
}

func TestClassify_Senior(t *testing.T) {
	assert.Equal(t, model.SenioritySenior, Classify("Senior Engineer").Tier)
	assert.Equal(t, model.SenioritySenior, Classify("Principal Scientist").Tier)
	assert.Equal(t, model.SenioritySenior, Classify("Tech Lead").Tier)
}

func TestClassify_ManagerBeatsSenior(t *testing.T) {
	// Manager is checked before Senior, so combined titles resolve up.
	got := Classify("Senior Manager")
	assert.Equal(t, model.SeniorityManager, got.Tier)
	assert.Equal(t, "keyword: manager/mgr", got.Rationale)
}

func TestClassify_ChiefBeatsEverything(t *testing.T) {
	assert.Equal(t, model.SeniorityCSuite, Classify("Chief of Staff, Senior Manager").Tier)
}

func TestClassify_EntryMarkers(t *testing.T) {
	got := Classify("Marketing Intern")
	assert.Equal(t, model.SeniorityEntry, got.Tier)
	assert.Equal(t, "keyword: entry-level term", got.Rationale)

	assert.Equal(t, model.SeniorityEntry, Classify("Graduate Trainee").Tier)
}

func TestClassify_TechnicalRoleDefault(t *testing.T) {
	got := Classify("Software Engineer")
	assert.Equal(t, model.SeniorityEntry, got.Tier)
	assert.Equal(t, "default: technical role", got.Rationale)
}

func TestClassify_Empty(t *testing.T) {
	got := Classify("")
	assert.Equal(t, model.SeniorityEntry, got.Tier)
	assert.Equal(t, "default: no seniority term found", got.Rationale)

	assert.Equal(t, model.SeniorityEntry, Classify("   ").Tier)
}

func TestClassify_NoKeyword(t *testing.T) {
	got := Classify("Wizard of Light Bulb Moments")
	assert.Equal(t, model.SeniorityEntry, got.Tier)
	assert.Equal(t, "default: none found", got.Rationale)
}
