package discovery

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

var (
	reYearOfManufacture = regexp.MustCompile(`Year of manufacture\s+(\d{4})`)
	reVinNumber         = regexp.MustCompile(`VIN number\s+([A-Z0-9]+)`)
	reEngineNumber      = regexp.MustCompile(`Engine number\s+([A-Z0-9]+)`)
	reColour            = regexp.MustCompile(`Colour\s+(\w+)`)
	reBasicExcess       = regexp.MustCompile(`Basic\s+R([\d,]+\.\d{2})`)
	reTotalExcess       = regexp.MustCompile(`Total\s+R([\d,]+\.\d{2})`)
)

// enrichVehicles adds year, VIN, engine, colour and excess details from the
// per-vehicle pages, located by registration number.
func (p *Parser) enrichVehicles(doc *pdftext.Document, policy *Policy) {
	pages := doc.PageNumbers()
	sort.Ints(pages)

	for _, v := range policy.MotorVehicles {
		if v.Registration == "" || v.Registration == "TBA" {
			continue
		}

		for _, n := range pages {
			pageText := doc.Pages[n]
			if !strings.Contains(pageText, v.Registration) {
				continue
			}

			if m := reYearOfManufacture.FindStringSubmatch(pageText); m != nil {
				if year, err := strconv.Atoi(m[1]); err == nil {
					v.YearOfManufacture = &year
				}
			}
			v.VinNumber = insurer.FirstGroup(pageText, reVinNumber)
			v.EngineNumber = insurer.FirstGroup(pageText, reEngineNumber)
			v.Colour = insurer.FirstGroup(pageText, reColour)

			if m := reBasicExcess.FindStringSubmatch(pageText); m != nil {
				v.Excess = &VehicleExcess{Basic: insurer.CleanAmount(m[1])}
				if tm := reTotalExcess.FindStringSubmatch(pageText); tm != nil {
					v.Excess.Total = insurer.CleanAmount(tm[1])
				}
			}
			break
		}
	}
}

var (
	reDetailSumInsured = regexp.MustCompile(`(?s)Sum insured.*?R\s*([\d,\s]+\.\d{2})`)
	reDetailPremium    = regexp.MustCompile(`Premium\s+R([\d,.\s]+)`)
	reEffectiveDate    = regexp.MustCompile(`Effective date:\s*(\d{2}/\d{2}/\d{4})`)
)

func (p *Parser) enrichBuildings(doc *pdftext.Document, text string, policy *Policy) {
	// Premium amounts in the Buildings summary block, assigned in order to
	// buildings that have none yet.
	if m := reBuildingSection.FindStringSubmatch(text); m != nil {
		var premiums []float64
		for _, am := range reSectionAmounts.FindAllStringSubmatch(m[1], -1) {
			if amt := insurer.CleanAmount(am[1]); amt != nil && *amt > 1 && *amt < 2000 {
				premiums = append(premiums, *amt)
			}
		}
		for i, b := range policy.Buildings {
			if i < len(premiums) && b.Premium == nil {
				b.Premium = insurer.Float(premiums[i])
			}
		}
	}

	pages := doc.PageNumbers()
	sort.Ints(pages)

	for _, b := range policy.Buildings {
		if b.Address == "" {
			continue
		}
		searchTerm := strings.TrimSpace(strings.Split(b.Address, ",")[0])

		for _, n := range pages {
			pageText := doc.Pages[n]
			if !strings.Contains(pageText, searchTerm) || !strings.Contains(pageText, "Buildings") {
				continue
			}

			if m := reDetailSumInsured.FindStringSubmatch(pageText); m != nil && b.SumInsured == nil {
				b.SumInsured = insurer.CleanAmount(m[1])
			}
			if m := reDetailPremium.FindStringSubmatch(pageText); m != nil && b.Premium == nil {
				b.Premium = insurer.CleanAmount(m[1])
			}
			if m := reEffectiveDate.FindStringSubmatch(pageText); m != nil && b.EffectiveDate == nil {
				b.EffectiveDate = insurer.String(m[1])
			}
			break
		}
	}
}

var (
	reDetailContentsComp = regexp.MustCompile(`Comprehensive.*?R([\d,.\s]+)`)
	reDetailContentsAcc  = regexp.MustCompile(`Accidental damage.*?R([\d,.\s]+)`)
)

func (p *Parser) enrichContents(doc *pdftext.Document, policy *Policy) {
	contents := policy.HouseholdContents
	if contents == nil {
		return
	}

	pages := doc.PageNumbers()
	sort.Ints(pages)

	for _, n := range pages {
		pageText := doc.Pages[n]
		if !strings.Contains(pageText, "Household contents") {
			continue
		}

		if m := reDetailSumInsured.FindStringSubmatch(pageText); m != nil {
			contents.SumInsured = insurer.CleanAmount(m[1])
		}
		if m := reDetailContentsComp.FindStringSubmatch(pageText); m != nil {
			contents.Premium = insurer.CleanAmount(m[1])
		}
		if m := reDetailContentsAcc.FindStringSubmatch(pageText); m != nil {
			contents.AccidentalDamage.Premium = insurer.CleanAmount(m[1])
		}
		if m := reEffectiveDate.FindStringSubmatch(pageText); m != nil {
			contents.EffectiveDate = insurer.String(m[1])
		}
		break
	}
}

var (
	reMillionsSum       = regexp.MustCompile(`R\s*([\d,]+,000,000\.?\d*)`)
	reLiabilityPremium  = regexp.MustCompile(`Personal liability.*?R([\d.]+)`)
)

func (p *Parser) enrichLiability(doc *pdftext.Document, policy *Policy) {
	liability := policy.PersonalLiability
	if liability == nil {
		return
	}

	pages := doc.PageNumbers()
	sort.Ints(pages)

	for _, n := range pages {
		pageText := doc.Pages[n]
		if !strings.Contains(pageText, "Personal liability") {
			continue
		}

		if m := reMillionsSum.FindStringSubmatch(pageText); m != nil {
			liability.SumInsured = insurer.CleanAmount(m[1])
		}
		if m := reLiabilityPremium.FindStringSubmatch(pageText); m != nil {
			liability.Premium = insurer.CleanAmount(m[1])
		}
		if m := reEffectiveDate.FindStringSubmatch(pageText); m != nil {
			liability.EffectiveDate = insurer.String(m[1])
		}
		break
	}
}
