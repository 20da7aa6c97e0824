// Package discovery parses Discovery Insure policy schedule PDFs.
package discovery

import (
	"regexp"
	"strconv"
	"strings"

	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

func init() {
	insurer.Register(insurer.NameDiscovery, func() insurer.Parser { return &Parser{} })
}

// Parser extracts plan, planholder, payment, adviser, cover and commission
// details from a Discovery Insure policy or quote schedule.
type Parser struct {
	motorPremiums    []float64
	buildingPremiums []float64
	contentsPremium  *float64
}

func (p *Parser) DocumentName() string { return "Discovery Insure Policy Schedule" }

func (p *Parser) SupportedFields() []string {
	return []string{
		"planNumber", "planType", "quoteEffectiveDate", "commencementDate",
		"planholder", "payment", "financialAdviser",
		"motorVehicles", "buildings", "householdContents", "personalLiability",
		"benefitsIncludedAtNoCost", "vitalityDrive", "sasria", "commission",
		"currentMonthlyPremium",
	}
}

func (p *Parser) Identify(doc *pdftext.Document) bool {
	return strings.Contains(doc.AllText(), "Discovery Insure")
}

func (p *Parser) Parse(doc *pdftext.Document) (any, error) {
	// Per-document accumulators; a reused instance starts clean.
	p.motorPremiums = nil
	p.buildingPremiums = nil
	p.contentsPremium = nil

	policy := &Policy{
		Insurer:            "Discovery Insure",
		ValidityPeriod:     "30 days from quote date",
		MotorVehicles:      []*Vehicle{},
		Buildings:          []*Building{},
		BenefitsAtNoCost:   []string{},
		AdditionalBenefits: map[string]any{},
	}

	text := doc.AllText()

	p.parseHeader(text, policy)
	p.parsePlanholder(text, policy)
	p.parsePayment(text, policy)
	p.parseAdviser(text, policy)
	p.parseSummaryOfCover(doc, text, policy)
	p.parseVehiclesFromSummary(text, policy)
	p.parseBuildingsFromSummary(text, policy)
	p.parseContentsFromSummary(text, policy)
	p.parseLiabilityFromSummary(text, policy)
	p.parseBenefitsAtNoCost(text, policy)
	p.parseVitalityDrive(text, policy)
	p.parseCommission(text, policy)

	p.enrichVehicles(doc, policy)
	p.enrichBuildings(doc, text, policy)
	p.enrichContents(doc, policy)
	p.enrichLiability(doc, policy)

	policy.Buildings = filterBuildings(policy.Buildings)

	return policy, nil
}

var (
	rePlanNumber = []*regexp.Regexp{
		regexp.MustCompile(`Plan number\s+(\d+)`),
		regexp.MustCompile(`Plan number:\s*(\d+)`),
		regexp.MustCompile(`Quote Schedule\s+Plan number\s+(\d+)`),
	}
	rePlanType    = regexp.MustCompile(`Plan type:\s*(\w+)`)
	reQuoteDate   = regexp.MustCompile(`Quote effective date:\s*(\d{2}/\d{2}/\d{4})`)
	reCommenceDate = regexp.MustCompile(`Commencement date:\s*(\d{2}/\d{2}/\d{4})`)
)

func (p *Parser) parseHeader(text string, policy *Policy) {
	policy.PlanNumber = insurer.FirstGroup(text, rePlanNumber...)
	policy.PlanType = insurer.FirstGroup(text, rePlanType)
	policy.QuoteEffectiveDate = insurer.FirstGroup(text, reQuoteDate)
	policy.CommencementDate = insurer.FirstGroup(text, reCommenceDate)
}

var (
	reHolderNameLoose = []*regexp.Regexp{
		regexp.MustCompile(`Planholder\s+([A-Za-z\s]+?)\s+Planholder type`),
		regexp.MustCompile(`Planholder\s+(Mr|Mrs|Ms|Miss|Dr)[\s]+([A-Za-z\s]+?)\s+Planholder type`),
	}
	reHolderName      = regexp.MustCompile(`Planholder\s+((?:Mr|Mrs|Ms|Miss|Dr)\s+[A-Za-z\s]+?)(?:\s+Planholder type|\s+Natural)`)
	reHolderType      = regexp.MustCompile(`Planholder type\s+(\w+(?:\s+\w+)?)`)
	reHolderID        = regexp.MustCompile(`Identity/passport number\s+(\d+)`)
	reHolderDOB       = regexp.MustCompile(`Date of birth\s+(\d{2}/\d{2}/\d{4})`)
	reMaritalStatus   = regexp.MustCompile(`Marital status\s+(\w+)`)
	reMaidenName      = regexp.MustCompile(`Maiden name\s+([^\n]+?)(?:\s+Residential|\s+$)`)
	reResidentialAddr = regexp.MustCompile(`Residential address\s+([^\n]+?)(?:\s+Postal address|\s+Home telephone)`)
	rePostalAddr      = regexp.MustCompile(`Postal address\s+([^\n]+?)(?:\s+Home telephone|\s+Work telephone)`)
	reHomePhone       = regexp.MustCompile(`Home telephone number\s+(\d+)`)
	reWorkPhone       = regexp.MustCompile(`Work telephone number\s+(\d+)`)
	reCellphone       = regexp.MustCompile(`Cellphone number\s+(\d+)`)
	reEmail           = regexp.MustCompile(`Email address\s+([^\s]+@[^\s]+)`)
	rePreferredComm   = regexp.MustCompile(`Preferred method of communication\s+(\w+)`)
	reMarketing       = regexp.MustCompile(`Direct Electronic Marketing\s+(Opted-out|Opted-in)`)
)

func (p *Parser) parsePlanholder(text string, policy *Policy) {
	holder := Planholder{}

	for _, re := range reHolderNameLoose {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.ReplaceAll(m[0], "Planholder", "")
			name = strings.ReplaceAll(name, "Planholder type", "")
			holder.Name = insurer.String(name)
			break
		}
	}
	if g := insurer.FirstGroup(text, reHolderName); g != nil {
		holder.Name = g
	}

	holder.PlanholderType = insurer.FirstGroup(text, reHolderType)
	holder.IDNumber = insurer.FirstGroup(text, reHolderID)
	holder.DateOfBirth = insurer.FirstGroup(text, reHolderDOB)
	holder.MaritalStatus = insurer.FirstGroup(text, reMaritalStatus)

	if g := insurer.FirstGroup(text, reMaidenName); g != nil && *g != "Not captured" {
		holder.MaidenName = g
	}

	holder.ResidentialAddress = insurer.FirstGroup(text, reResidentialAddr)
	holder.PostalAddress = insurer.FirstGroup(text, rePostalAddr)
	holder.Contact.HomePhone = insurer.FirstGroup(text, reHomePhone)
	holder.Contact.WorkPhone = insurer.FirstGroup(text, reWorkPhone)
	holder.Contact.Cellphone = insurer.FirstGroup(text, reCellphone)
	holder.Contact.Email = insurer.FirstGroup(text, reEmail)
	holder.PreferredCommunication = insurer.FirstGroup(text, rePreferredComm)
	holder.ElectronicMarketing = insurer.FirstGroup(text, reMarketing)

	policy.Planholder = holder
}

var (
	rePayerName     = regexp.MustCompile(`Payer name\s+((?:Mr|Mrs|Ms|Miss|Dr)\s+[A-Za-z\s]+?)(?:\s+Maiden|\s+ID)`)
	rePayerID       = regexp.MustCompile(`ID or Passport number\s+(\d+)`)
	rePayerGender   = regexp.MustCompile(`Gender\s+(Male|Female)`)
	reAccountHolder = regexp.MustCompile(`Account holder\s+([A-Za-z\s]+?)(?:\s+Account number)`)
	reAccountNumber = regexp.MustCompile(`Account number\s+(\*+\d+|\d+)`)
	reBank          = regexp.MustCompile(`Financial institution\s+([A-Za-z\s]+?)(?:\s+Account type)`)
	reAccountType   = regexp.MustCompile(`Account type\s+(\w+)`)
	reBranch        = regexp.MustCompile(`Branch name and code\s+([^\n]+?)(?:\s+Debit day)`)
	reDebitDay      = regexp.MustCompile(`Debit day\s+(\d+)`)
	rePayFrequency  = regexp.MustCompile(`Payment frequency\s+(\w+)`)
)

func (p *Parser) parsePayment(text string, policy *Policy) {
	payment := Payment{}

	if strings.Contains(text, "Debit Order") {
		payment.PaymentType = insurer.String("Debit Order")
	} else if strings.Contains(text, "EFT") {
		payment.PaymentType = insurer.String("EFT")
	}

	payment.PayerName = insurer.FirstGroup(text, rePayerName)
	payment.PayerIDNumber = insurer.FirstGroup(text, rePayerID)
	payment.PayerGender = insurer.FirstGroup(text, rePayerGender)
	payment.AccountHolder = insurer.FirstGroup(text, reAccountHolder)
	payment.AccountNumber = insurer.FirstGroup(text, reAccountNumber)
	payment.Bank = insurer.FirstGroup(text, reBank)
	payment.AccountType = insurer.FirstGroup(text, reAccountType)
	payment.BranchNameAndCode = insurer.FirstGroup(text, reBranch)

	if g := insurer.FirstGroup(text, reDebitDay); g != nil {
		if day, err := strconv.Atoi(*g); err == nil {
			payment.DebitDay = &day
		}
	}

	payment.PaymentFrequency = insurer.FirstGroup(text, rePayFrequency)

	policy.Payment = payment
}

var (
	reAdviserName  = regexp.MustCompile(`Financial adviser name\s+((?:Mr|Mrs|Ms|Miss|Dr)\s+[A-Za-z\s]+?)(?:\s+Financial adviser code)`)
	reAdviserCode  = regexp.MustCompile(`Financial adviser code\s+(\d+)`)
	reCommSplit    = regexp.MustCompile(`Commission split\s+([\d.]+)\s*%`)
)

func (p *Parser) parseAdviser(text string, policy *Policy) {
	adviser := Adviser{}
	adviser.Name = insurer.FirstGroup(text, reAdviserName)
	adviser.Code = insurer.FirstGroup(text, reAdviserCode)
	if g := insurer.FirstGroup(text, reCommSplit); g != nil {
		adviser.CommissionSplit = insurer.String(*g + "%")
	}
	policy.FinancialAdviser = adviser
}

// filterBuildings drops addresses that are artifacts of column bleed: leading
// "0," prefixes, the spurious "Bella Rosa" complex name, and duplicates.
func filterBuildings(buildings []*Building) []*Building {
	valid := make([]*Building, 0, len(buildings))
	seen := map[string]bool{}
	leadingZero := regexp.MustCompile(`^0\s*,`)
	for _, b := range buildings {
		addr := strings.TrimSpace(b.Address)
		if leadingZero.MatchString(addr) {
			continue
		}
		if strings.Contains(strings.ToLower(addr), "bella rosa") {
			continue
		}
		key := strings.ToLower(addr)
		if seen[key] {
			continue
		}
		seen[key] = true
		valid = append(valid, b)
	}
	return valid
}
