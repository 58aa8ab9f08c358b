package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spigell/vagas/internal/resume"
	"github.com/spigell/vagas/internal/utils"
	"github.com/spigell/vagas/internal/vagas"
)

const descriptionPreview = 150

// render writes v as JSON in json mode and calls text otherwise.
func (a *application) render(w io.Writer, v any, text func(w io.Writer)) error {
	if a.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	text(w)
	return nil
}

func printJobs(w io.Writer, jobs *vagas.Jobs) {
	if jobs.Len() == 0 {
		fmt.Fprintln(w, "no jobs found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tSALARY\tMODE\tCONTRACT\t")
	for _, job := range jobs.Items {
		title := job.Title()
		if job.Featured {
			title = "* " + title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			job.ID, title, job.Company, job.Place(),
			vagas.FormatSalary(job.Salary), job.ModeLabel(), job.ContractLabel(),
		)
	}
	tw.Flush()
}

func printJob(w io.Writer, job *vagas.Job) {
	fmt.Fprintf(w, "%s (%s)\n", job.Title(), job.ID)
	if job.Company != "" {
		fmt.Fprintf(w, "Company:     %s\n", job.Company)
	}
	fmt.Fprintf(w, "Location:    %s\n", job.Place())
	fmt.Fprintf(w, "Salary:      %s\n", vagas.FormatSalary(job.Salary))
	fmt.Fprintf(w, "Mode:        %s\n", job.ModeLabel())
	fmt.Fprintf(w, "Contract:    %s\n", job.ContractLabel())
	if job.Level != "" {
		fmt.Fprintf(w, "Level:       %s\n", job.Level)
	}
	if date, err := resume.ParseDate(job.PublishedAt); err == nil {
		fmt.Fprintf(w, "Published:   %s\n", date.Format("02/01/2006"))
	}
	if job.URL != "" {
		fmt.Fprintf(w, "URL:         %s\n", job.URL)
	}
	if job.Description != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(job.Description))
	}
	printList(w, "Requirements", job.Requirements)
	printList(w, "Benefits", job.Benefits)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func printResume(w io.Writer, r *resume.Resume) {
	fmt.Fprintf(w, "%s (%s)\n", r.Name, r.ID)
	fmt.Fprintf(w, "Residence:   %s\n", r.Residence)
	fmt.Fprintf(w, "Birth date:  %s\n", r.BirthDate)
	fmt.Fprintf(w, "Education:   %s\n", r.EducationLevel)
	if r.UniversityName != "" {
		fmt.Fprintf(w, "University:  %s\n", r.UniversityName)
	}
	if r.DesiredRole != "" {
		fmt.Fprintf(w, "Desired:     %s\n", r.DesiredRole)
	}
	if r.ExpectedSalary > 0 {
		fmt.Fprintf(w, "Salary:      %s\n", vagas.FormatSalary(r.ExpectedSalary))
	}
	fmt.Fprintf(w, "Relocation:  %t\n", r.RelocationAvailable)
	fmt.Fprintf(w, "Travel:      %t\n", r.TravelAvailable)

	if len(r.Experiences) > 0 {
		fmt.Fprintln(w, "\nExperience:")
		for _, e := range r.Experiences {
			end := e.EndDate
			if e.Current {
				end = "now"
			}
			fmt.Fprintf(w, "  - %s at %s (%s - %s)\n", e.Role, e.Company, e.StartDate, end)
			if e.Description != "" {
				fmt.Fprintf(w, "    %s\n", utils.TruncateForLog(e.Description, descriptionPreview))
			}
		}
	}

	if len(r.Courses) > 0 {
		fmt.Fprintln(w, "\nCourses:")
		for _, c := range r.Courses {
			fmt.Fprintf(w, "  - %s, %s (%dh)\n", c.Name, c.Institution, c.Hours)
		}
	}

	if len(r.Languages) > 0 {
		fmt.Fprintln(w, "\nLanguages:")
		for _, l := range r.Languages {
			fmt.Fprintf(w, "  - %s: %s\n", l.Name, l.Level)
		}
	}

	if len(r.Skills) > 0 {
		fmt.Fprintln(w, "\nSkills:")
		for _, s := range r.Skills {
			fmt.Fprintf(w, "  - %s: %s\n", s.Name, s.Level)
		}
	}
}

func printCompanies(w io.Writer, companies *vagas.Companies) {
	if companies.Len() == 0 {
		fmt.Fprintln(w, "no companies found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSECTOR\tLOCATION\t")
	for _, c := range companies.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", c.ID, c.Name, c.Sector, joinNonEmpty(", ", c.City, c.State))
	}
	tw.Flush()
}

func printCompany(w io.Writer, c *vagas.Company) {
	fmt.Fprintf(w, "%s (%s)\n", c.Name, c.ID)
	if c.Sector != "" {
		fmt.Fprintf(w, "Sector:      %s\n", c.Sector)
	}
	if loc := joinNonEmpty(", ", c.City, c.State); loc != "" {
		fmt.Fprintf(w, "Location:    %s\n", loc)
	}
	if c.Website != "" {
		fmt.Fprintf(w, "Website:     %s\n", c.Website)
	}
	if c.Description != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(c.Description))
	}
}

func printValidationErrors(w io.Writer, errs resume.Errors) {
	fmt.Fprintln(w, "the résumé has errors:")
	for _, field := range errs.Fields() {
		fmt.Fprintf(w, "  %s: %s\n", field, errs[field])
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
