package discovery

import (
	"regexp"
	"sort"
	"strings"

	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

var (
	reMonthlyPremium = []*regexp.Regexp{
		regexp.MustCompile(`(?is)Current monthly premium\s+R\s*([\d\s,]+\.?\d*)`),
		regexp.MustCompile(`(?is)Current monthly premium.*?R([\d,\s]+\.?\d*)`),
		regexp.MustCompile(`(?is)monthly premium\s+R\s*([\d\s,]+\.?\d*)`),
	}
	reSasria = regexp.MustCompile(`SASRIA\s+R([\d,.\s]+)`)
)

func (p *Parser) parseSummaryOfCover(doc *pdftext.Document, text string, policy *Policy) {
	p.parseSummaryRows(doc, policy)

	for _, re := range reMonthlyPremium {
		if m := re.FindStringSubmatch(text); m != nil {
			if premium := insurer.CleanAmount(m[1]); premium != nil && policy.CurrentMonthlyPremium == nil {
				policy.CurrentMonthlyPremium = premium
				break
			}
		}
	}

	if m := reSasria.FindStringSubmatch(text); m != nil && policy.Sasria == nil {
		policy.Sasria = insurer.CleanAmount(m[1])
	}
}

var (
	reRowAmount       = regexp.MustCompile(`R\s*([\d,.\s]+)`)
	reRowPremiumExact = regexp.MustCompile(`R\s*([\d,\s]+\.\d{2})`)
	reRowLiabilitySum = regexp.MustCompile(`R\s*([\d,]+,000)`)
)

// parseSummaryRows walks the row-structured text of every page, tracking which
// summary section each row belongs to, and collects per-section premium
// candidates plus the totals that appear inline in the table.
func (p *Parser) parseSummaryRows(doc *pdftext.Document, policy *Policy) {
	pages := doc.PageNumbers()
	sort.Ints(pages)

	for _, n := range pages {
		section := ""
		for _, row := range doc.Rows[n] {
			rowText := strings.Join(row, " ")
			if rowText == "" {
				continue
			}

			switch {
			case strings.Contains(rowText, "Motor vehicles"):
				section = "motor"
			case strings.Contains(rowText, "Buildings"):
				section = "buildings"
			case strings.Contains(rowText, "Household contents"):
				section = "contents"
			case strings.Contains(rowText, "Personal liability"):
				section = "liability"
			}

			if m := reRowAmount.FindStringSubmatch(rowText); m != nil {
				if amt := insurer.CleanAmount(m[1]); amt != nil && *amt > 0 {
					switch {
					case section == "motor" && *amt < 2000:
						p.motorPremiums = append(p.motorPremiums, *amt)
					case section == "buildings" && *amt < 1000:
						p.buildingPremiums = append(p.buildingPremiums, *amt)
					case section == "contents":
						p.contentsPremium = amt
					}
				}
			}

			if strings.Contains(rowText, "Current monthly premium") {
				if m := reRowPremiumExact.FindStringSubmatch(rowText); m != nil {
					policy.CurrentMonthlyPremium = insurer.CleanAmount(m[1])
				}
			}

			if strings.Contains(rowText, "SASRIA") {
				if m := reRowAmount.FindStringSubmatch(rowText); m != nil {
					policy.Sasria = insurer.CleanAmount(m[1])
				}
			}

			if strings.Contains(rowText, "Personal liability") {
				if m := reRowLiabilitySum.FindStringSubmatch(rowText); m != nil {
					if policy.PersonalLiability == nil {
						policy.PersonalLiability = &Liability{}
					}
					policy.PersonalLiability.SumInsured = insurer.CleanAmount(m[1])
				}
			}
		}
	}
}

var (
	reVehicleEntries = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Z-]+),\s*([A-Z0-9\s/.-]+?),\s*([A-Z]{2,3}\d+)`),
		regexp.MustCompile(`([A-Z][A-Z-]+),\s*([A-Z0-9\s/.-]+?)\s+Registration\s+([A-Z0-9]+)`),
		regexp.MustCompile(`([A-Z][A-Z-]+),\s*([A-Z0-9\s/.-]+?),\s*(TBA)`),
	}
	rePrimaryDriver  = regexp.MustCompile(`Primary driver:\s*([A-Za-z][A-Za-z\s]+?)(?:\n[A-Z]{2,}|$)`)
	reDriverMakeTail = regexp.MustCompile(`(?i)\s*(FORD|MERCEDES|BMW|VOLVO|TOYOTA|VOLKSWAGEN|AUDI|VW).*$`)
	reMotorSection   = regexp.MustCompile(`(?s)Motor vehicles\s+(.*?)(?:Buildings|$)`)
	reCompPremium    = regexp.MustCompile(`(?i)Comprehensive\s*\(Motor\)[^\d]*R\s*([\d,]+\.\d{2})`)
	reAnyPremium     = regexp.MustCompile(`R\s*([\d,]+\.\d{2})`)
	reSvrPremium     = regexp.MustCompile(`(?s)Stolen Vehicle Recovery.*?R\s*([\d,]+\.\d{2})`)

	// Make names that delimit successive vehicle blocks in the motor section,
	// longest variants first so MERCEDES-BENZ wins over MERCEDES.
	carMakes        = []string{"FORD", "MERCEDES-BENZ", "MERCEDES", "BMW", "VOLVO", "TOYOTA", "VOLKSWAGEN", "VW", "AUDI"}
	reVehicleBounds = regexp.MustCompile(`(?i)(?:FORD|MERCEDES-BENZ|MERCEDES|BMW|VOLVO|TOYOTA|VOLKSWAGEN|VW|AUDI)[,\s]|Buildings`)
)

func (p *Parser) parseVehiclesFromSummary(text string, policy *Policy) {
	vehicles := policy.MotorVehicles
	found := map[string]bool{}
	for _, v := range vehicles {
		found[v.Make+"_"+v.Model+"_"+v.Registration] = true
	}

	for _, re := range reVehicleEntries {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			make := strings.TrimSpace(m[1])
			model := strings.TrimSpace(m[2])
			reg := strings.TrimSpace(m[3])

			key := make + "_" + model + "_" + reg
			if found[key] {
				continue
			}
			found[key] = true

			vehicles = append(vehicles, &Vehicle{
				Make:         make,
				Model:        model,
				Registration: reg,
				CoverType:    "Comprehensive (Motor)",
				CarHire:      true,
			})
		}
	}

	// Pair primary drivers with vehicles in document order, trimming any car
	// make that bled into the captured name from the following line.
	var drivers []string
	for _, m := range rePrimaryDriver.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(reDriverMakeTail.ReplaceAllString(m[1], ""))
		if name != "" && len(name) > 3 {
			drivers = append(drivers, name)
		}
	}
	for i, v := range vehicles {
		if i < len(drivers) {
			v.PrimaryDriver = insurer.String(drivers[i])
		}
	}

	if m := reMotorSection.FindStringSubmatch(text); m != nil {
		sectionText := m[1]

		for _, v := range vehicles {
			vText := vehicleSlice(sectionText, v.Make)
			if vText == "" {
				continue
			}

			if cm := reCompPremium.FindStringSubmatch(vText); cm != nil {
				v.Premium = insurer.CleanAmount(cm[1])
			} else {
				for _, pm := range reAnyPremium.FindAllStringSubmatch(vText, -1) {
					if val := insurer.CleanAmount(pm[1]); val != nil && *val > 100 {
						v.Premium = val
						break
					}
				}
			}

			if strings.Contains(vText, "Stolen Vehicle Recovery") {
				v.StolenVehicleRecovery = true
				if sm := reSvrPremium.FindStringSubmatch(vText); sm != nil {
					v.SvrPremium = insurer.CleanAmount(sm[1])
				}
			}
		}

		// Leftover vehicles pick up comprehensive premiums in section order.
		var allPremiums []float64
		for _, cm := range reCompPremium.FindAllStringSubmatch(sectionText, -1) {
			if amt := insurer.CleanAmount(cm[1]); amt != nil && *amt > 0 {
				allPremiums = append(allPremiums, *amt)
			}
		}
		idx := 0
		for _, v := range vehicles {
			if v.Premium == nil && idx < len(allPremiums) {
				v.Premium = insurer.Float(allPremiums[idx])
				idx++
			} else if v.Premium != nil {
				idx++
			}
		}

		for _, v := range vehicles {
			if v.Premium != nil {
				continue
			}
			pos := strings.Index(strings.ToUpper(sectionText), strings.ToUpper(v.Make))
			if pos < 0 {
				continue
			}
			for _, pm := range reAnyPremium.FindAllStringSubmatch(sectionText[pos:], -1) {
				if val := insurer.CleanAmount(pm[1]); val != nil && *val > 200 {
					v.Premium = val
					break
				}
			}
		}
	}

	for i, v := range vehicles {
		if i < len(p.motorPremiums) {
			v.Premium = insurer.Float(p.motorPremiums[i])
		}
	}

	if len(vehicles) > 0 {
		policy.MotorVehicles = vehicles
	}
}

// vehicleSlice cuts the block of the motor section belonging to one vehicle:
// from the first occurrence of its make up to the next make name or the
// Buildings heading.
func vehicleSlice(section, make string) string {
	start := strings.Index(strings.ToUpper(section), strings.ToUpper(make))
	if start < 0 {
		return ""
	}
	end := len(section)
	for _, b := range reVehicleBounds.FindAllStringIndex(section, -1) {
		if b[0] >= start+len(make) {
			end = b[0]
			break
		}
	}
	return section[start:end]
}

var (
	reBuildingSection = regexp.MustCompile(`(?s)Buildings\s+(.*?)(?:Household contents|Personal liability)`)
	reBuildingAddrs   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+,\s*[A-Za-z\s]+(?:street|road|avenue|drive|lane|way),?\s*[A-Za-z]+,?\s*[A-Za-z]+,?\s*(?:Western Cape|Gauteng|Eastern Cape|KwaZulu-Natal|Free State|Mpumalanga|Limpopo|Northern Cape|North West))`),
		regexp.MustCompile(`(?i)(\d+,\s*[A-Za-z][A-Za-z\s]+,\s*[A-Za-z]+,\s*[A-Za-z]+,\s*(?:Western Cape|Gauteng|Eastern Cape|KwaZulu-Natal|Free State|Mpumalanga|Limpopo|Northern Cape|North West))`),
	}
	reSectionAmounts  = regexp.MustCompile(`R\s*([\d\s,]+\.?\d*)`)
	reBuildingEntries = regexp.MustCompile(`(?s)(\d+,\s*[^R]+?)(?:Effective date|Comprehensive).*?R\s*([\d\s,]+\.\d{2})`)
	reFallbackAddr    = regexp.MustCompile(`(?i)(\d+,\s*[A-Za-z][A-Za-z\s]+(?:street|road)[,\s]+[A-Za-z]+[,\s]+[A-Za-z]+[,\s]+(?:Western Cape|Gauteng|Eastern Cape))`)
	reMultiSpace      = regexp.MustCompile(`\s+`)
	reDoubleComma     = regexp.MustCompile(`,\s*,`)
)

func (p *Parser) parseBuildingsFromSummary(text string, policy *Policy) {
	var buildings []*Building

	if m := reBuildingSection.FindStringSubmatch(text); m != nil {
		sectionText := m[1]
		sectionCleaned := reMultiSpace.ReplaceAllString(strings.ReplaceAll(sectionText, "\n", " "), " ")

		found := map[string]bool{}
		for _, re := range reBuildingAddrs {
			for _, am := range re.FindAllStringSubmatch(sectionCleaned, -1) {
				addr := strings.TrimSpace(am[1])
				addr = reMultiSpace.ReplaceAllString(addr, " ")
				addr = reDoubleComma.ReplaceAllString(addr, ",")

				key := strings.ToLower(addr)
				if found[key] {
					continue
				}
				found[key] = true

				buildings = append(buildings, &Building{
					Address:   addr,
					CoverType: "Comprehensive (Building)",
				})
			}
		}

		// Split loose amounts in the section into sum-insured and premium
		// candidates by magnitude.
		var sumInsureds, premiums []float64
		for _, am := range reSectionAmounts.FindAllStringSubmatch(sectionText, -1) {
			amt := insurer.CleanAmount(am[1])
			if amt == nil {
				continue
			}
			if *amt > 100000 {
				sumInsureds = append(sumInsureds, *amt)
			} else if *amt > 50 && *amt < 2000 {
				premiums = append(premiums, *amt)
			}
		}

		entries := reBuildingEntries.FindAllStringSubmatch(sectionText, -1)
		for _, b := range buildings {
			parts := strings.Split(b.Address, ",")
			if len(parts) < 2 {
				continue
			}
			street := strings.ToLower(strings.TrimSpace(parts[1]))
			for _, e := range entries {
				if strings.Contains(strings.ToLower(e[1]), street) {
					if amt := insurer.CleanAmount(e[2]); amt != nil && *amt > 100000 {
						b.SumInsured = amt
						break
					}
				}
			}
		}

		for i, b := range buildings {
			if b.SumInsured == nil && i < len(sumInsureds) {
				b.SumInsured = insurer.Float(sumInsureds[i])
			}
			if b.Premium == nil && i < len(premiums) {
				b.Premium = insurer.Float(premiums[i])
			}
		}
	}

	buildings = filterBuildings(buildings)

	if len(buildings) == 0 {
		cleaned := reMultiSpace.ReplaceAllString(strings.ReplaceAll(text, "\n", " "), " ")
		found := map[string]bool{}
		for _, am := range reFallbackAddr.FindAllStringSubmatch(cleaned, -1) {
			addr := reMultiSpace.ReplaceAllString(strings.TrimSpace(am[1]), " ")
			if strings.HasPrefix(addr, "0,") {
				continue
			}
			key := strings.ToLower(addr)
			if found[key] {
				continue
			}
			found[key] = true
			buildings = append(buildings, &Building{
				Address:   addr,
				CoverType: "Comprehensive (Building)",
			})
		}
	}

	if len(buildings) > 0 {
		policy.Buildings = buildings
	}
}

var (
	reContentsSection = regexp.MustCompile(`(?s)Household contents\s+(.*?)(?:Personal liability|Benefits included)`)
	reContentsAddr    = regexp.MustCompile(`(\d+,\s*[A-Za-z\s]+,\s*[A-Za-z]+,\s*[A-Za-z]+,\s*(?:Western Cape|Gauteng|Eastern Cape))`)
	reContentsSums    = []*regexp.Regexp{
		regexp.MustCompile(`R\s*([\d\s,]+\.\d{2})`),
		regexp.MustCompile(`([\d,\s]+\.\d{2})`),
	}
	reContentsComp = regexp.MustCompile(`Comprehensive.*?R\s*([\d,.\s]+)`)
	reContentsAcc  = regexp.MustCompile(`Accidental damage.*?R\s*([\d,.\s]+)`)
)

func (p *Parser) parseContentsFromSummary(text string, policy *Policy) {
	cleaned := strings.ReplaceAll(text, "\n", " ")

	contents := &HouseholdContents{CoverType: "Comprehensive (Contents)"}

	if m := reContentsSection.FindStringSubmatch(text); m != nil {
		sectionText := m[1]

		contents.Address = insurer.FirstGroup(cleaned, reContentsAddr)

		for _, re := range reContentsSums {
			for _, am := range re.FindAllStringSubmatch(sectionText, -1) {
				if amt := insurer.CleanAmount(am[1]); amt != nil && *amt > 100000 {
					contents.SumInsured = amt
					break
				}
			}
			if contents.SumInsured != nil {
				break
			}
		}

		if pm := reContentsComp.FindStringSubmatch(sectionText); pm != nil {
			contents.ComprehensivePremium = insurer.CleanAmount(pm[1])
		}

		if strings.Contains(sectionText, "Accidental damage") || strings.Contains(text, "Accidental damage") {
			contents.AccidentalDamage.Included = true
			if am := reContentsAcc.FindStringSubmatch(sectionText); am != nil {
				contents.AccidentalDamage.Premium = insurer.CleanAmount(am[1])
			}
		}
	}

	policy.HouseholdContents = contents
}

var (
	reLiabilitySum  = regexp.MustCompile(`(?s)Personal liability.*?R\s*([\d,]+(?:\.\d{2})?)`)
	reLiabilityFive = regexp.MustCompile(`(?s)Personal liability.*?R\s*(5[,\s]*000[,\s]*000)`)
)

func (p *Parser) parseLiabilityFromSummary(text string, policy *Policy) {
	liability := policy.PersonalLiability
	if liability == nil {
		liability = &Liability{}
	}

	if m := reLiabilitySum.FindStringSubmatch(text); m != nil {
		liability.SumInsured = insurer.CleanAmount(m[1])
	}
	// R5,000,000 is the standard liability limit and beats partial matches.
	if reLiabilityFive.MatchString(text) {
		liability.SumInsured = insurer.Float(5000000.00)
	}

	policy.PersonalLiability = liability
}
