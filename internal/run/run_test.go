package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/reconcile-cli/internal/config"
	"github.com/sells-group/reconcile-cli/internal/identity"
	"github.com/sells-group/reconcile-cli/internal/model"
)

func testConfig(pairs ...string) *config.Config {
	return &config.Config{
		Reconcile: config.ReconcileConfig{
			FieldPairs:      pairs,
			SeniorityColumn: "seniority",
		},
		Identity: identity.DefaultConfig(),
		Columns: config.ColumnsConfig{
			Company:  []string{"companyname", "company"},
			Domain:   []string{"website", "domain", "email domain"},
			JobTitle: []string{"jobtitle", "job title"},
		},
	}
}

func TestResolve(t *testing.T) {
	table := model.NewTable([]string{"Company Name", "Website"}, nil)

	idx, ok := Resolve(table, []string{"companyname", "company name"})
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = Resolve(table, []string{"jobtitle", "job title"})
	assert.False(t, ok)
}

func TestRun_EndToEnd(t *testing.T) {
	master := model.NewTable(
		[]string{"c_industry", "jobtitle", "companyname", "website"},
		[][]string{
			{"finance ", "Chief Technology Officer", "Tesco PLC", "tesco.com"},
			{"Retail", "Software Engineer", "Acme Rockets", "unrelatedbrand.net"},
		},
	)
	picklist := model.NewTable(
		[]string{"c_industry", "seniority"},
		[][]string{
			{"Finance", "C Suite"},
			{"Retail", "Manager"},
		},
	)

	out := New(testConfig("c_industry")).Run(master, picklist)

	require.NotEmpty(t, out.RunID)
	assert.Equal(t, 4, out.AppendedFrom)

	// master value canonicalized in place, correction recorded
	assert.Equal(t, "Finance", master.Cell(0, 0))
	require.Len(t, out.Corrections, 1)
	assert.Equal(t, model.Correction{Field: "c_industry", Row: 0}, out.Corrections[0])
	assert.Equal(t, model.MarkCorrected, out.Marks.Get(0, 0))

	matchCol := master.ColumnIndex("Match_c_industry")
	require.GreaterOrEqual(t, matchCol, 4)
	assert.Equal(t, "Yes", master.Cell(0, matchCol))
	assert.Equal(t, "Yes", master.Cell(1, matchCol))
	assert.Equal(t, model.MarkMatchYes, out.Marks.Get(0, matchCol))

	tierCol := master.ColumnIndex(ColParsedSeniority)
	require.GreaterOrEqual(t, tierCol, 0)
	assert.Equal(t, "C Suite", master.Cell(0, tierCol))
	assert.Equal(t, "Entry", master.Cell(1, tierCol))

	logicCol := master.ColumnIndex(ColSeniorityLogic)
	assert.Equal(t, "keyword: c-level", master.Cell(0, logicCol))

	smCol := master.ColumnIndex(ColSeniorityMatch)
	assert.Equal(t, "Yes", master.Cell(0, smCol))
	assert.Equal(t, "No", master.Cell(1, smCol)) // Entry not in picklist vocabulary
	assert.Equal(t, model.MarkMatchNo, out.Marks.Get(1, smCol))

	statusCol := master.ColumnIndex(ColDomainCheckStatus)
	scoreCol := master.ColumnIndex(ColDomainCheckScore)
	reasonCol := master.ColumnIndex(ColDomainCheckReason)
	assert.Equal(t, "Likely Match", master.Cell(0, statusCol))
	assert.Equal(t, "100", master.Cell(0, scoreCol))
	assert.Equal(t, "direct containment", master.Cell(0, reasonCol))
	assert.Equal(t, "Likely NOT Match", master.Cell(1, statusCol))
	assert.Equal(t, model.MarkMatchYes, out.Marks.Get(0, statusCol))
	assert.Equal(t, model.MarkMatchNo, out.Marks.Get(1, statusCol))

	assert.Equal(t, 2, out.Summary.Records)
	assert.Equal(t, 1, out.Summary.Corrections)
	assert.Equal(t, 1, out.Summary.LikelyMatch)
	assert.Equal(t, 1, out.Summary.LikelyNotMatch)
}

func TestRun_MissingFieldPairColumn(t *testing.T) {
	master := model.NewTable(
		[]string{"companyname", "website"},
		[][]string{{"Acme", "acme.com"}},
	)
	picklist := model.NewTable([]string{"c_industry"}, [][]string{{"Finance"}})

	out := New(testConfig("lead_country")).Run(master, picklist)

	col := master.ColumnIndex("Match_lead_country")
	require.GreaterOrEqual(t, col, 0)
	assert.Equal(t, "Column Missing", master.Cell(0, col))
	assert.Equal(t, model.MarkUnsure, out.Marks.Get(0, col))
	assert.Empty(t, out.Corrections)
}

func TestRun_NoJobTitleColumn(t *testing.T) {
	master := model.NewTable(
		[]string{"companyname", "website"},
		[][]string{{"Acme", "acme.com"}},
	)
	picklist := model.NewTable([]string{"seniority"}, [][]string{{"Manager"}})

	out := New(testConfig()).Run(master, picklist)

	tierCol := master.ColumnIndex(ColParsedSeniority)
	logicCol := master.ColumnIndex(ColSeniorityLogic)
	smCol := master.ColumnIndex(ColSeniorityMatch)
	assert.Equal(t, "", master.Cell(0, tierCol))
	assert.Equal(t, "jobtitle column not found", master.Cell(0, logicCol))
	assert.Equal(t, "Column Missing", master.Cell(0, smCol))
	assert.Equal(t, model.MarkUnsure, out.Marks.Get(0, tierCol))
	assert.Equal(t, model.MarkUnsure, out.Marks.Get(0, logicCol))
}

func TestRun_NoSeniorityPicklistColumn(t *testing.T) {
	master := model.NewTable(
		[]string{"jobtitle"},
		[][]string{{"Director of Sales"}},
	)
	picklist := model.NewTable([]string{"c_industry"}, [][]string{{"Finance"}})

	out := New(testConfig()).Run(master, picklist)

	smCol := master.ColumnIndex(ColSeniorityMatch)
	assert.Equal(t, "Picklist Missing", master.Cell(0, smCol))
	assert.Equal(t, model.MarkUnsure, out.Marks.Get(0, smCol))

	tierCol := master.ColumnIndex(ColParsedSeniority)
	assert.Equal(t, "Director", master.Cell(0, tierCol))
}

func TestRun_NoIdentityColumns(t *testing.T) {
	master := model.NewTable(
		[]string{"jobtitle"},
		[][]string{{"CTO"}},
	)
	picklist := model.NewTable([]string{"seniority"}, [][]string{{"C Suite"}})

	out := New(testConfig()).Run(master, picklist)

	statusCol := master.ColumnIndex(ColDomainCheckStatus)
	scoreCol := master.ColumnIndex(ColDomainCheckScore)
	reasonCol := master.ColumnIndex(ColDomainCheckReason)
	assert.Equal(t, "No company/domain columns found", master.Cell(0, statusCol))
	assert.Equal(t, "", master.Cell(0, scoreCol))
	assert.Equal(t, "", master.Cell(0, reasonCol))
	assert.Equal(t, model.MarkUnsure, out.Marks.Get(0, statusCol))
	assert.Equal(t, 0, out.Summary.LikelyMatch+out.Summary.Unsure+out.Summary.LikelyNotMatch)
}

func TestRun_WebsitePreferredOverEmailDomain(t *testing.T) {
	master := model.NewTable(
		[]string{"companyname", "email domain", "website"},
		[][]string{{"Tesco PLC", "gmail.com", "tesco.com"}},
	)
	picklist := model.NewTable([]string{"seniority"}, [][]string{{"Manager"}})

	out := New(testConfig()).Run(master, picklist)

	statusCol := master.ColumnIndex(ColDomainCheckStatus)
	assert.Equal(t, "Likely Match", master.Cell(0, statusCol))
	assert.Equal(t, 1, out.Summary.LikelyMatch)
}
