// Package doctype maps document type GUIDs to the parsers that handle them.
package doctype

import "polisched/internal/insurer"

// Document type GUIDs. In production these would come from the database; for
// now they are constants for type safety. Format: {INSURER}-{DOCUMENT}-{VERSION}.
const (
	DiscoveryPolicyScheduleV1 = "d1s0-p0l1-sch3-v001"
	DiscoveryQuoteScheduleV1  = "d1s0-qu0t-sch3-v001"
	SantamPolicyScheduleV1    = "s4nt-p0l1-sch3-v001"
	OldMutualPolicyScheduleV1 = "0ldm-p0l1-sch3-v001"
	OutsurancePolicyScheduleV1 = "0uts-p0l1-sch3-v001"
	HollardPrivatePortfolioV1 = "h0ll-pr1v-p0rt-v001"

	// AutoDetect asks the service to probe every registered parser.
	AutoDetect = "auto-d3t3-ct00-0000"
)

const (
	StatusActive = "active"
	StatusStub   = "stub"
)

// Info describes one registered document type.
type Info struct {
	GUID        string `json:"guid"`
	Name        string `json:"name"`
	Insurer     string `json:"insurer"`
	Description string `json:"description"`
	ParserName  string `json:"parserName"`
	Status      string `json:"status"`
}

// registry keys document type GUIDs to their metadata. Order fixes the output
// of listing endpoints.
var registry = []Info{
	{
		GUID:        DiscoveryPolicyScheduleV1,
		Name:        "Discovery Insure Policy Schedule",
		Insurer:     "Discovery Insure",
		Description: "Discovery Insure policy schedule document containing vehicle, building, and contents cover details",
		ParserName:  insurer.NameDiscovery,
		Status:      StatusActive,
	},
	{
		GUID:        DiscoveryQuoteScheduleV1,
		Name:        "Discovery Insure Quote Schedule",
		Insurer:     "Discovery Insure",
		Description: "Discovery Insure quote schedule document (pre-policy)",
		ParserName:  insurer.NameDiscovery,
		Status:      StatusActive,
	},
	{
		GUID:        SantamPolicyScheduleV1,
		Name:        "Santam Policy Schedule",
		Insurer:     "Santam",
		Description: "Santam insurance policy schedule",
		ParserName:  insurer.NameSantam,
		Status:      StatusStub,
	},
	{
		GUID:        OldMutualPolicyScheduleV1,
		Name:        "Old Mutual Policy Schedule",
		Insurer:     "Old Mutual",
		Description: "Old Mutual insurance policy schedule",
		ParserName:  insurer.NameGeneric,
		Status:      StatusStub,
	},
	{
		GUID:        OutsurancePolicyScheduleV1,
		Name:        "OUTsurance Policy Schedule",
		Insurer:     "OUTsurance",
		Description: "OUTsurance insurance policy schedule",
		ParserName:  insurer.NameGeneric,
		Status:      StatusStub,
	},
	{
		GUID:        HollardPrivatePortfolioV1,
		Name:        "Hollard Private Portfolio Policy Schedule",
		Insurer:     "Hollard Insurance",
		Description: "Hollard Private Portfolio policy schedule containing motor, household contents, all risks, and personal liability cover",
		ParserName:  insurer.NameHollard,
		Status:      StatusActive,
	},
}

// Lookup returns the metadata registered for guid.
func Lookup(guid string) (Info, bool) {
	for _, info := range registry {
		if info.GUID == guid {
			return info, true
		}
	}
	return Info{}, false
}

// All returns every registered document type.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Supported returns document types with an active parser, excluding stubs.
func Supported() []Info {
	var out []Info
	for _, info := range registry {
		if info.Status == StatusActive {
			out = append(out, info)
		}
	}
	return out
}

// InsurerInfo groups the registered document types of one insurance company.
type InsurerInfo struct {
	Name      string            `json:"name"`
	Documents []InsurerDocument `json:"documents"`
	Status    string            `json:"status"`
}

type InsurerDocument struct {
	GUID   string `json:"guid"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Insurers lists the supported insurance companies with their documents. An
// insurer is active when at least one of its document types is.
func Insurers() []InsurerInfo {
	var order []string
	byName := map[string]*InsurerInfo{}

	for _, info := range registry {
		entry, ok := byName[info.Insurer]
		if !ok {
			entry = &InsurerInfo{Name: info.Insurer, Status: StatusStub}
			byName[info.Insurer] = entry
			order = append(order, info.Insurer)
		}
		entry.Documents = append(entry.Documents, InsurerDocument{
			GUID:   info.GUID,
			Name:   info.Name,
			Status: info.Status,
		})
		if info.Status == StatusActive {
			entry.Status = StatusActive
		}
	}

	out := make([]InsurerInfo, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}
