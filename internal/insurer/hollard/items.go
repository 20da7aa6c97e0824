package hollard

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

var (
	reItemReference  = regexp.MustCompile(`Item Reference\s*:\s*(\w+)`)
	reRiskAddress    = regexp.MustCompile(`(?s)RISK ADDRESS\s*:\s*([^\n]+(?:\n[^\n]+)*?)(?:\nRISK DETAILS|\nStart)`)
	reItemStartDate  = regexp.MustCompile(`Start date\s*:\s*(\d{1,2}\s+\w+\s+\d{4})`)
	reStartSumPrem   = regexp.MustCompile(`Start date\s*:\s*\d{1,2}\s+\w+\s+\d{4}\s+([\d\s,]+)\s+([\d,.]+)`)
	reTypeOfHome     = regexp.MustCompile(`Type of home\s*:\s*([^\n]+)`)
	reLocality       = regexp.MustCompile(`Locality\s*:\s*([^\n]+)`)
	reWallConstr     = regexp.MustCompile(`Wall construction\s*:\s*(\w+)`)
	reRoofConstr     = regexp.MustCompile(`Roof construction\s*:\s*(\w+)`)
	reOccupancy      = regexp.MustCompile(`Occupancy\s*:\s*([^\n]+)`)
	reCoverOptLine   = regexp.MustCompile(`Cover option\s*:\s*([^\n]+)`)
	reSasriaYes      = regexp.MustCompile(`(?i)Sasria included\s*:\s*Yes`)
	reSasriaYesPrem  = regexp.MustCompile(`Sasria included\s*:\s*Yes\s+([\d,.]+)`)
	reBasicExcess    = regexp.MustCompile(`Basic excess\s*:\s*R\s*([\d\s,]+)`)
	reSecurity       = regexp.MustCompile(`Minimum security measures\s*:\s*([^\n]+)`)
	reAccidental     = regexp.MustCompile(`Accidental damage.*?:\s*Yes\s+([\d\s,]+)\s+([\d,.]+)`)
	rePowerSurge     = regexp.MustCompile(`Power surge\s*:\s*Yes\s+([\d\s,]+)\s+([\d,.]+)`)
	reItemTotal      = regexp.MustCompile(`TOTAL\s+([\d,.]+)`)
)

func (p *Parser) parseHouseholdContents(doc *pdftext.Document, policy *Policy) {
	items := []*ContentsItem{}

	for _, n := range sortedPages(doc) {
		pageText := doc.Pages[n]
		if !strings.Contains(pageText, "HOUSEHOLD CONTENTS") || !strings.Contains(pageText, "Item Reference") {
			continue
		}

		item := &ContentsItem{AdditionalCover: map[string]AdditionalCover{}}

		item.ItemReference = insurer.FirstGroup(pageText, reItemReference)

		if m := reRiskAddress.FindStringSubmatch(pageText); m != nil {
			item.RiskAddress = insurer.String(strings.ReplaceAll(m[1], "\n", ", "))
		}

		item.StartDate = insurer.FirstGroup(pageText, reItemStartDate)

		if m := reStartSumPrem.FindStringSubmatch(pageText); m != nil {
			item.SumInsured = insurer.CleanAmount(m[1])
			item.Premium = insurer.CleanAmount(m[2])
		}

		item.TypeOfHome = insurer.FirstGroup(pageText, reTypeOfHome)
		item.Locality = insurer.FirstGroup(pageText, reLocality)
		item.WallConstruction = insurer.FirstGroup(pageText, reWallConstr)
		item.RoofConstruction = insurer.FirstGroup(pageText, reRoofConstr)
		item.Occupancy = insurer.FirstGroup(pageText, reOccupancy)
		item.CoverOption = insurer.FirstGroup(pageText, reCoverOptLine)

		if reSasriaYes.MatchString(pageText) {
			item.SasriaIncluded = true
			if m := reSasriaYesPrem.FindStringSubmatch(pageText); m != nil {
				item.SasriaPremium = insurer.CleanAmount(m[1])
			}
		}

		if m := reBasicExcess.FindStringSubmatch(pageText); m != nil {
			item.BasicExcess = insurer.CleanAmount(m[1])
		}

		item.SecurityMeasures = insurer.FirstGroup(pageText, reSecurity)

		if strings.Contains(pageText, "Accidental damage") {
			if m := reAccidental.FindStringSubmatch(pageText); m != nil {
				item.AdditionalCover["accidentalDamage"] = AdditionalCover{
					SumInsured: insurer.CleanAmount(m[1]),
					Premium:    insurer.CleanAmount(m[2]),
				}
			}
		}
		if strings.Contains(pageText, "Power surge") {
			if m := rePowerSurge.FindStringSubmatch(pageText); m != nil {
				item.AdditionalCover["powerSurge"] = AdditionalCover{
					SumInsured: insurer.CleanAmount(m[1]),
					Premium:    insurer.CleanAmount(m[2]),
				}
			}
		}

		if m := reItemTotal.FindStringSubmatch(pageText); m != nil {
			item.TotalPremium = insurer.CleanAmount(m[1])
		}

		if item.ItemReference != nil {
			items = append(items, item)
		}
	}

	policy.HouseholdContents = items
}

var (
	reAllRisksRow    = regexp.MustCompile(`(\w+)\s+([\w/\s]+?)\s+([\w/\s()]+?)\s+([\d\s,]+)\s+([\d,.]+)`)
	reAllRisksSimple = regexp.MustCompile(`ALL\d+\s+.*?Unspecified.*?\s+([\d\s,]+)\s+([\d,.]+)`)
)

func (p *Parser) parseAllRisks(doc *pdftext.Document, policy *Policy) {
	items := []*AllRisksItem{}

	for _, n := range sortedPages(doc) {
		pageText := doc.Pages[n]
		if !strings.Contains(pageText, "ALL RISKS") || !strings.Contains(pageText, "Item #") {
			continue
		}

		for _, m := range reAllRisksRow.FindAllStringSubmatch(pageText, -1) {
			if !strings.HasPrefix(m[1], "ALL") {
				continue
			}
			items = append(items, &AllRisksItem{
				ItemNumber:  m[1],
				Category:    strings.TrimSpace(m[2]),
				Description: strings.TrimSpace(m[3]),
				SumInsured:  insurer.CleanAmount(m[4]),
				Premium:     insurer.CleanAmount(m[5]),
			})
		}

		if len(items) == 0 {
			if m := reAllRisksSimple.FindStringSubmatch(pageText); m != nil {
				items = append(items, &AllRisksItem{
					ItemNumber:  "ALL0001",
					Category:    "Clothing/Personal Effects",
					Description: "Unspecified",
					SumInsured:  insurer.CleanAmount(m[1]),
					Premium:     insurer.CleanAmount(m[2]),
				})
			}
		}
	}

	policy.AllRisks = items
}

var (
	reLiabilityRow = regexp.MustCompile(`Personal Liability\s+([\d\s,]+)\s+([\d,.]+)`)
	reBusinessYes  = regexp.MustCompile(`(?i)Business Liability\s*:\s*Yes`)
)

func (p *Parser) parsePersonalLiability(doc *pdftext.Document, policy *Policy) {
	liability := &Liability{}

	for _, n := range sortedPages(doc) {
		pageText := doc.Pages[n]
		if !strings.Contains(pageText, "PERSONAL LIABILITY") || !strings.Contains(pageText, "Item Reference") {
			continue
		}

		liability.ItemReference = insurer.FirstGroup(pageText, reItemReference)
		liability.StartDate = insurer.FirstGroup(pageText, reItemStartDate)

		if m := reLiabilityRow.FindStringSubmatch(pageText); m != nil {
			liability.SumInsured = insurer.CleanAmount(m[1])
			liability.Premium = insurer.CleanAmount(m[2])
		}

		if reBusinessYes.MatchString(pageText) {
			liability.BusinessLiability = true
		}
		break
	}

	policy.PersonalLiability = liability
}

func (p *Parser) parseMotorVehicles(doc *pdftext.Document, policy *Policy) {
	vehicles := []*Vehicle{}
	pages := sortedPages(doc)

	for i, n := range pages {
		pageText := doc.Pages[n]
		if !strings.Contains(pageText, "MOTOR") ||
			!strings.Contains(pageText, "Item Reference") ||
			!strings.Contains(pageText, "Make") {
			continue
		}

		vehicle := parseVehiclePage(pageText)
		if vehicle == nil || vehicle.Make == nil {
			continue
		}

		if hasRegistration(vehicles, vehicle.Registration) {
			continue
		}

		// Driver details live on the vehicle page or spill onto the next one.
		if !parseDriver(vehicle, pageText) && i+1 < len(pages) {
			parseDriver(vehicle, doc.Pages[pages[i+1]])
		}

		vehicles = append(vehicles, vehicle)
	}

	policy.MotorVehicles = vehicles
}

// hasRegistration reports whether a vehicle with this registration was already
// collected. Two vehicles without registration numbers count as duplicates.
func hasRegistration(vehicles []*Vehicle, reg *string) bool {
	for _, v := range vehicles {
		if v.Registration == nil && reg == nil {
			return true
		}
		if v.Registration != nil && reg != nil && *v.Registration == *reg {
			return true
		}
	}
	return false
}

var (
	reVehicleStart   = regexp.MustCompile(`Start date\s*:\s*(\d{1,2}\s+\w+\s+\d{4})\s+([\d,.]+)`)
	reVehicleAddress = regexp.MustCompile(`(?s)RISK ADDRESS\s*:\s*([^\n]+(?:\n[^\n]+)*?)(?:\nRISK DETAILS)`)
	reMake           = regexp.MustCompile(`Make\s*:\s*([^\n]+)`)
	reModel          = regexp.MustCompile(`Model\s*:\s*([^\n]+(?:\n[^\n]+)?)`)
	reModelYearRange = regexp.MustCompile(`(?s)^(.+?\(\d{4}\s*-\s*(?:\d{1,2}/)?(?:\d{4})?\))`)
	reYearOfManuf    = regexp.MustCompile(`Year of manufacture\s*:\s*(\d{4})`)
	reSourceCode     = regexp.MustCompile(`Vehicle source code\s*:\s*(\d+)`)
	reRegistration   = regexp.MustCompile(`Registration number\s*:\s*([A-Z0-9]+)`)
	reVin            = regexp.MustCompile(`VIN/Chassis number\s*:\s*([A-Z0-9]+)`)
	reEngine         = regexp.MustCompile(`Engine number\s*:\s*([A-Z0-9]+)`)
	reMileage        = regexp.MustCompile(`Mileage range\s*:\s*(\w+)`)
	reCondition      = regexp.MustCompile(`Vehicle condition\s*:\s*(\w+)`)
	reBaseRetail     = regexp.MustCompile(`Base Retail Value\s*:\s*([\d\s,]+)`)
	reFinalSum       = regexp.MustCompile(`Final Sum Insured\s*:\s*([\d\s,]+)`)
	reFinalSumAcc    = regexp.MustCompile(`(?s)Final Sum Insured Including.*?(?:Accessories\s*:?|:)\s*([\d\s,]+)`)
	reSettlement     = regexp.MustCompile(`Basis of settlement\s*:\s*([^\n]+)`)
	reCoverOptWord   = regexp.MustCompile(`Cover option\s*:\s*(\w+)`)
	reConditionOfUse = regexp.MustCompile(`Condition of use\s*:\s*([^\n]+)`)
	reThirdParty     = regexp.MustCompile(`Liability to third parties\s*:\s*([\d\s,]+)`)
	reAddExcess      = regexp.MustCompile(`Additional excess\s*:\s*(\d+)`)
	reVolExcess      = regexp.MustCompile(`Voluntary excess\s*:\s*R\s*([\d\s,]+)`)
	reOwner          = regexp.MustCompile(`Registered owner\s*:\s*([^\n]+)`)
	reOwnerDOB       = regexp.MustCompile(`Registered owner's date of birth\s*:\s*([^\n]+)`)
	reTracking       = regexp.MustCompile(`First tracking device type\s*:\s*(\w+)`)
	reImmobiliser    = regexp.MustCompile(`Immobiliser required\s*:\s*([^\n]+)`)
	reParking        = regexp.MustCompile(`Overnight parking\s*:\s*([^\n]+)`)
)

func parseVehiclePage(pageText string) *Vehicle {
	v := &Vehicle{}

	v.ItemReference = insurer.FirstGroup(pageText, reItemReference)

	if m := reVehicleAddress.FindStringSubmatch(pageText); m != nil {
		v.RiskAddress = insurer.String(strings.ReplaceAll(m[1], "\n", ", "))
	}

	if m := reVehicleStart.FindStringSubmatch(pageText); m != nil {
		v.StartDate = insurer.String(m[1])
		v.Premium = insurer.CleanAmount(m[2])
	}

	v.Make = insurer.FirstGroup(pageText, reMake)

	if m := reModel.FindStringSubmatch(pageText); m != nil {
		modelText := strings.TrimSpace(m[1])
		if ym := reModelYearRange.FindStringSubmatch(modelText); ym != nil {
			v.Model = insurer.String(insurer.CollapseSpaces(ym[1]))
		} else {
			words := strings.Fields(modelText)
			if len(words) > 10 {
				words = words[:10]
			}
			v.Model = insurer.String(strings.Join(words, " "))
		}
	}

	if m := reYearOfManuf.FindStringSubmatch(pageText); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			v.YearOfManufacture = &year
		}
	}

	v.VehicleSourceCode = insurer.FirstGroup(pageText, reSourceCode)
	v.Registration = insurer.FirstGroup(pageText, reRegistration)
	v.VinNumber = insurer.FirstGroup(pageText, reVin)
	v.EngineNumber = insurer.FirstGroup(pageText, reEngine)
	v.MileageRange = insurer.FirstGroup(pageText, reMileage)
	v.VehicleCondition = insurer.FirstGroup(pageText, reCondition)

	if m := reBaseRetail.FindStringSubmatch(pageText); m != nil {
		v.BaseRetailValue = insurer.CleanAmount(m[1])
	}
	if m := reFinalSum.FindStringSubmatch(pageText); m != nil {
		v.FinalSumInsured = insurer.CleanAmount(m[1])
	}
	if m := reFinalSumAcc.FindStringSubmatch(pageText); m != nil {
		v.FinalSumInsuredWithAccessories = insurer.CleanAmount(m[1])
	}

	v.CoverDetails.BasisOfSettlement = insurer.FirstGroup(pageText, reSettlement)
	v.CoverDetails.CoverOption = insurer.FirstGroup(pageText, reCoverOptWord)
	v.CoverDetails.ConditionOfUse = insurer.FirstGroup(pageText, reConditionOfUse)

	if m := reThirdParty.FindStringSubmatch(pageText); m != nil {
		v.CoverDetails.ThirdPartyLiability = insurer.CleanAmount(m[1])
	}

	if reSasriaYes.MatchString(pageText) {
		v.CoverDetails.SasriaIncluded = true
		if m := reSasriaYesPrem.FindStringSubmatch(pageText); m != nil {
			v.CoverDetails.SasriaPremium = insurer.CleanAmount(m[1])
		}
	}

	if m := reBasicExcess.FindStringSubmatch(pageText); m != nil {
		v.Excess.Basic = insurer.CleanAmount(m[1])
	}
	if m := reAddExcess.FindStringSubmatch(pageText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			v.Excess.Additional = &n
		}
	}
	if m := reVolExcess.FindStringSubmatch(pageText); m != nil {
		v.Excess.Voluntary = insurer.CleanAmount(m[1])
	}

	v.RegisteredOwner.Name = insurer.FirstGroup(pageText, reOwner)
	v.RegisteredOwner.DateOfBirth = insurer.FirstGroup(pageText, reOwnerDOB)

	v.Security.FirstTrackingDevice = insurer.FirstGroup(pageText, reTracking)
	v.Security.ImmobiliserRequired = insurer.FirstGroup(pageText, reImmobiliser)
	v.Security.OvernightParking = insurer.FirstGroup(pageText, reParking)

	if m := reItemTotal.FindStringSubmatch(pageText); m != nil {
		v.TotalPremium = insurer.CleanAmount(m[1])
	}

	return v
}

var (
	reDriverName    = regexp.MustCompile(`Driver Name\s*:\s*([^\n]+)`)
	reDriverDOB     = regexp.MustCompile(`Date of Birth\s*:\s*(\d{1,2}\s+\w+\s+\d{4})`)
	reDriverGender  = regexp.MustCompile(`Gender\s*:\s*(\w+)`)
	reDriverMarital = regexp.MustCompile(`Marital Status\s*:\s*(\w+)`)
	reLicenseType   = regexp.MustCompile(`License Type\s*:\s*(\w+)`)
	reLicenseIssued = regexp.MustCompile(`Licence issued\s*:\s*(\d+)`)
)

// parseDriver fills in the driver block from pageText, returning whether a
// driver name was present.
func parseDriver(v *Vehicle, pageText string) bool {
	if !strings.Contains(pageText, "Driver Name") {
		return false
	}

	v.Driver.Name = insurer.FirstGroup(pageText, reDriverName)
	v.Driver.DateOfBirth = insurer.FirstGroup(pageText, reDriverDOB)
	v.Driver.Gender = insurer.FirstGroup(pageText, reDriverGender)
	v.Driver.MaritalStatus = insurer.FirstGroup(pageText, reDriverMarital)
	v.Driver.LicenseType = insurer.FirstGroup(pageText, reLicenseType)
	v.Driver.LicenseIssued = insurer.FirstGroup(pageText, reLicenseIssued)

	if m := reItemTotal.FindStringSubmatch(pageText); m != nil {
		v.TotalPremium = insurer.CleanAmount(m[1])
	}

	return v.Driver.Name != nil
}

func sortedPages(doc *pdftext.Document) []int {
	pages := doc.PageNumbers()
	sort.Ints(pages)
	return pages
}
