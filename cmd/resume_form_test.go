package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spigell/vagas/internal/resume"
)

func TestSplitKey(t *testing.T) {
	cases := []struct {
		key   string
		field string
		index int
	}{
		{"nome", "nome", -1},
		{"cursosComplementares", "cursosComplementares", -1},
		{"cursosComplementares[3].cargaHoraria", "cursosComplementares", 3},
		{"cursosComplementares[x]", "cursosComplementares", -1},
	}

	for _, tc := range cases {
		field, index := splitKey(tc.key)
		if field != tc.field || index != tc.index {
			t.Fatalf("splitKey(%q) = %q, %d; want %q, %d", tc.key, field, index, tc.field, tc.index)
		}
	}
}

func TestParseSkills(t *testing.T) {
	skills := parseSkills(" Go:Avançado, , SQL ,:Iniciante")

	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d: %+v", len(skills), skills)
	}
	if skills[0] != (resume.Skill{Name: "Go", Level: "Avançado"}) {
		t.Fatalf("unexpected first skill: %+v", skills[0])
	}
	if skills[1].Name != "SQL" || skills[1].Level != resume.SkillLevels[0] {
		t.Fatalf("unexpected second skill: %+v", skills[1])
	}
}

func TestLoadDraft(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"draft.yaml": `
nome: Ana
residencia: Recife, PE
dataNascimento: "1990-05-01"
nivelEscolaridade: Superior Completo
nomeUniversidade: UFPE
pretensaoSalarial: "4500"
skills:
  - nome: Go
    nivel: Avançado
cursosComplementares:
  - nome: Docker
    instituicao: Alura
    cargaHoraria: 20
`,
		"draft.json": `{
  "nome": "Ana",
  "residencia": "Recife, PE",
  "dataNascimento": "1990-05-01",
  "nivelEscolaridade": "Superior Completo",
  "nomeUniversidade": "UFPE",
  "pretensaoSalarial": 4500,
  "skills": [{"nome": "Go", "nivel": "Avançado"}],
  "cursosComplementares": [{"nome": "Docker", "instituicao": "Alura", "cargaHoraria": 20}]
}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("write draft: %v", err)
			}

			d, err := loadDraft(path)
			if err != nil {
				t.Fatalf("loadDraft: %v", err)
			}

			if d.Name != "Ana" || d.Residence != "Recife, PE" || d.BirthDate != "1990-05-01" {
				t.Fatalf("unexpected personal data: %+v", d)
			}
			if d.UniversityName != "UFPE" || d.ExpectedSalary != 4500 {
				t.Fatalf("unexpected education or salary: %+v", d)
			}
			if len(d.Skills) != 1 || d.Skills[0].Name != "Go" {
				t.Fatalf("unexpected skills: %+v", d.Skills)
			}
			if len(d.Courses) != 1 || d.Courses[0].Hours != 20 {
				t.Fatalf("unexpected courses: %+v", d.Courses)
			}
		})
	}
}

func TestLoadDraftMissingFile(t *testing.T) {
	if _, err := loadDraft(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing draft file")
	}
}
