package vagas

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestJobTitle(t *testing.T) {
	cases := []struct {
		job  Job
		want string
	}{
		{job: Job{Heading: "Dev Go", AltHeading: "Go Dev"}, want: "Dev Go"},
		{job: Job{Heading: "  ", AltHeading: "Go Dev"}, want: "Go Dev"},
		{job: Job{}, want: titleNotAvailable},
	}

	for _, tc := range cases {
		if got := tc.job.Title(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestJobLabels(t *testing.T) {
	job := Job{Mode: "remoto", ContractType: "ESTAGIO", City: "Recife", State: "PE"}

	if got := job.ModeLabel(); got != "Remoto" {
		t.Fatalf("unexpected mode label %q", got)
	}
	if got := job.ContractLabel(); got != "Estágio" {
		t.Fatalf("unexpected contract label %q", got)
	}
	if got := job.Place(); got != "Recife, PE" {
		t.Fatalf("unexpected place %q", got)
	}

	empty := Job{ContractType: "FREELA"}
	if got := empty.ModeLabel(); got != notInformed {
		t.Fatalf("unexpected empty mode label %q", got)
	}
	if got := empty.ContractLabel(); got != "FREELA" {
		t.Fatalf("unknown contract types must be shown as is, got %q", got)
	}
	if got := empty.Place(); got != notInformed {
		t.Fatalf("unexpected empty place %q", got)
	}
}

func TestFormatSalary(t *testing.T) {
	if got := FormatSalary(0); got != salaryToAgree {
		t.Fatalf("expected %q for zero salary, got %q", salaryToAgree, got)
	}

	got := FormatSalary(3500)
	if !strings.HasPrefix(got, "R$ ") || !strings.HasSuffix(got, ",00") {
		t.Fatalf("expected BRL formatting, got %q", got)
	}
}

func TestJobsExclude(t *testing.T) {
	jobs := &Jobs{Items: []*Job{
		{ID: "1", Company: "Acme"},
		{ID: "2", Company: "Globex"},
		{ID: "3", Company: "acme "},
		{ID: "4", Company: "Initech"},
	}}

	excluded := jobs.Exclude(JobCompanyField, []string{"ACME", ""})

	if !reflect.DeepEqual(excluded, []string{"1", "3"}) {
		t.Fatalf("unexpected excluded ids %v", excluded)
	}
	if !reflect.DeepEqual(jobs.IDs(), []string{"2", "4"}) {
		t.Fatalf("unexpected remaining ids %v", jobs.IDs())
	}

	excluded = jobs.Exclude(JobIDField, []string{"4"})
	if !reflect.DeepEqual(excluded, []string{"4"}) || jobs.Len() != 1 {
		t.Fatalf("unexpected exclusion by id: %v, left %d", excluded, jobs.Len())
	}

	if jobs.FindByID("2") == nil || jobs.FindByID("4") != nil {
		t.Fatalf("unexpected FindByID result")
	}
}

func TestReportByCompany(t *testing.T) {
	jobs := &Jobs{Items: []*Job{
		{ID: "1", Heading: "Go Developer", Company: "Acme", City: "Campinas", State: "SP", Mode: ModeHybrid, ContractType: ContractCLT},
		{ID: "2", Heading: "SRE", Company: "Acme"},
		{ID: "3", AltHeading: "QA"},
	}}

	report := jobs.ReportByCompany()

	entries := report["Acme"]
	if len(entries) != 2 {
		t.Fatalf("expected 2 Acme entries, got %d", len(entries))
	}

	entry := entries[0]
	if entry["title"] != "Go Developer" || entry["location"] != "Campinas, SP" || entry["salary"] != salaryToAgree {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["mode"] != "Híbrido" || entry["contract"] != "CLT" {
		t.Fatalf("unexpected labels %v", entry)
	}

	if len(report[notInformed]) != 1 {
		t.Fatalf("expected jobs without company under %q", notInformed)
	}
}

func TestDumpToTmpFile(t *testing.T) {
	jobs := &Jobs{Items: []*Job{{ID: "1", Heading: "Go"}}}

	path, err := jobs.DumpToTmpFile()
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}

	var got Jobs
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode dump: %v", err)
	}
	if got.Len() != 1 || got.Items[0].ID != "1" {
		t.Fatalf("unexpected dump content %s", data)
	}
}

func TestBuildParams(t *testing.T) {
	cases := []struct {
		filter *JobFilter
		want   string
	}{
		{filter: &JobFilter{State: "", City: "SP"}, want: "cidade=SP"},
		{filter: &JobFilter{City: "  "}, want: ""},
		{filter: &JobFilter{Keyword: "go", Mode: ModeRemote, Level: "Senior"}, want: "modalidade=REMOTO&nivelExperiencia=Senior&palavraChave=go"},
		{filter: &JobFilter{ContractType: ContractPJ, State: "RJ"}, want: "estado=RJ&tipoContrato=PJ"},
		{filter: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%+v", tc.filter), func(t *testing.T) {
			if got := buildParams(tc.filter).Encode(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("load résumé: %w", statusError(404, nil))

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected wrapped error to match ErrNotFound")
	}
	if errors.Is(err, ErrServer) {
		t.Fatalf("did not expect match with ErrServer")
	}
	if CategoryOf(err) != CategoryNotFound {
		t.Fatalf("unexpected category %q", CategoryOf(err))
	}
	if CategoryOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty category for foreign errors")
	}

	cause := errors.New("dial tcp: refused")
	if !errors.Is(connectionError(cause), cause) {
		t.Fatalf("expected the cause to be reachable")
	}
}
