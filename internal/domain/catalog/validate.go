package catalog

import (
	"fmt"
	"sort"
)

type IssueKind string

const (
	IssueDuplicateID      IssueKind = "DUPLICATE_ID"
	IssueDanglingProgram  IssueKind = "DANGLING_PROGRAM"
	IssueDanglingPartner  IssueKind = "DANGLING_PARTNER"
	IssueDuplicatePairing IssueKind = "DUPLICATE_RELATIONSHIP"
)

// Issue is a curation defect. None of these stop the dashboard from rendering.
type Issue struct {
	Kind       IssueKind `json:"kind"`
	Collection string    `json:"collection"`
	RecordID   string    `json:"record_id"`
	Detail     string    `json:"detail"`
}

// Validate reports duplicate ids and references to unknown records.
func (c *Catalog) Validate() []Issue {
	var issues []Issue

	issues = append(issues, duplicates("programs", len(c.programs), func(i int) string { return c.programs[i].ID() })...)
	issues = append(issues, duplicates("partners", len(c.partners), func(i int) string { return c.partners[i].ID() })...)
	issues = append(issues, duplicates("bonuses", len(c.bonuses), func(i int) string { return c.bonuses[i].ID() })...)

	for _, b := range c.bonuses {
		if !c.programIdx.Has(b.ProgramID()) {
			issues = append(issues, Issue{
				Kind: IssueDanglingProgram, Collection: "bonuses", RecordID: b.ID(),
				Detail: fmt.Sprintf("unknown program_id %q", b.ProgramID()),
			})
		}
		if !c.partnerIdx.Has(b.PartnerID()) {
			issues = append(issues, Issue{
				Kind: IssueDanglingPartner, Collection: "bonuses", RecordID: b.ID(),
				Detail: fmt.Sprintf("unknown partner_id %q", b.PartnerID()),
			})
		}
	}

	seen := make(map[string]bool, len(c.relationships))
	for _, r := range c.relationships {
		id := r.ProgramID() + "/" + r.PartnerID()
		if seen[id] {
			issues = append(issues, Issue{
				Kind: IssueDuplicatePairing, Collection: "transfer_relationships", RecordID: id,
				Detail: "relationship defined more than once",
			})
		}
		seen[id] = true
		if !c.programIdx.Has(r.ProgramID()) {
			issues = append(issues, Issue{
				Kind: IssueDanglingProgram, Collection: "transfer_relationships", RecordID: id,
				Detail: fmt.Sprintf("unknown program_id %q", r.ProgramID()),
			})
		}
		if !c.partnerIdx.Has(r.PartnerID()) {
			issues = append(issues, Issue{
				Kind: IssueDanglingPartner, Collection: "transfer_relationships", RecordID: id,
				Detail: fmt.Sprintf("unknown partner_id %q", r.PartnerID()),
			})
		}
	}

	return issues
}

func duplicates(collection string, n int, id func(int) string) []Issue {
	counts := make(map[string]int, n)
	for i := range n {
		counts[id(i)]++
	}
	var issues []Issue
	for k, cnt := range counts {
		if cnt > 1 {
			issues = append(issues, Issue{
				Kind: IssueDuplicateID, Collection: collection, RecordID: k,
				Detail: fmt.Sprintf("id appears %d times", cnt),
			})
		}
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].RecordID < issues[j].RecordID })
	return issues
}
