// Package hollard parses Hollard Private Portfolio policy schedule PDFs.
package hollard

import (
	"regexp"
	"strconv"
	"strings"

	"polisched/internal/insurer"
	"polisched/internal/pdftext"
)

func init() {
	insurer.Register(insurer.NameHollard, func() insurer.Parser { return &Parser{} })
}

// Parser extracts policyholder, broker, premium schedule and per-item cover
// details from a Hollard Private Portfolio schedule.
type Parser struct{}

func (p *Parser) DocumentName() string { return "Hollard Private Portfolio Policy Schedule" }

func (p *Parser) SupportedFields() []string {
	return []string{
		"quoteNumber", "policyType", "periodOfInsurance", "startDate",
		"policyholder", "broker", "insurer", "administrator",
		"premiumSchedule", "householdContents", "allRisks",
		"personalLiability", "motorVehicles", "totalPremium",
	}
}

func (p *Parser) Identify(doc *pdftext.Document) bool {
	upper := strings.ToUpper(doc.AllText())
	return strings.Contains(upper, "HOLLARD") &&
		(strings.Contains(upper, "PRIVATE PORTFOLIO") || strings.Contains(upper, "HOLLARD INSURANCE"))
}

func (p *Parser) Parse(doc *pdftext.Document) (any, error) {
	policy := &Policy{
		Insurer:           "Hollard Insurance",
		DocumentType:      "Private Portfolio",
		HouseholdContents: []*ContentsItem{},
		AllRisks:          []*AllRisksItem{},
		MotorVehicles:     []*Vehicle{},
	}

	text := doc.AllText()

	p.parsePolicyDetails(text, policy)
	p.parsePolicyholder(text, policy)
	p.parseBroker(text, policy)
	p.parseInsurerDetails(text, policy)
	p.parseAdministrator(text, policy)
	p.parsePremiumSchedule(text, policy)
	p.parseHouseholdContents(doc, policy)
	p.parseAllRisks(doc, policy)
	p.parsePersonalLiability(doc, policy)
	p.parseMotorVehicles(doc, policy)

	return policy, nil
}

var (
	reQuoteNumber   = regexp.MustCompile(`(?i)Quote number.*?:\s*([A-Z0-9-]+)`)
	rePolicyType    = regexp.MustCompile(`(?i)Type of policy\s*:\s*(\w+)`)
	rePeriod        = regexp.MustCompile(`Period of insurance\s*:\s*\(A\)\s*([^\n]+)`)
	reStartDateNum  = regexp.MustCompile(`Start date\s*:\s*(\d{2}/\d{2}/\d{4})`)
	reStartDateWord = regexp.MustCompile(`Start date\s*:\s*(\d{1,2}\s+\w+\s+\d{4})`)
)

func (p *Parser) parsePolicyDetails(text string, policy *Policy) {
	policy.QuoteNumber = insurer.FirstGroup(text, reQuoteNumber)
	policy.PolicyType = insurer.FirstGroup(text, rePolicyType)
	policy.PeriodOfInsurance = insurer.FirstGroup(text, rePeriod)
	policy.StartDate = insurer.FirstGroup(text, reStartDateNum, reStartDateWord)
}

var (
	reHolderName    = regexp.MustCompile(`The policyholder\s*:\s*([^\n]+)`)
	rePhysicalAddr  = regexp.MustCompile(`(?s)Address details\s*:\s*Physical\s+([^\n]+(?:\n[^\n]+)*?)(?:\nContact|Postal)`)
	reCell          = regexp.MustCompile(`:\s*Cell\s+(\d[\d\s]+)`)
	reHolderEmail   = regexp.MustCompile(`:\s*E-mail\s+([^\s\n]+@[^\s\n]+)`)
	reDateOfBirth   = regexp.MustCompile(`Date of Birth\s*:\s*(\d{2}/\d{2}/\d{4})`)
)

func (p *Parser) parsePolicyholder(text string, policy *Policy) {
	holder := Policyholder{}

	holder.Name = insurer.FirstGroup(text, reHolderName)

	if m := rePhysicalAddr.FindStringSubmatch(text); m != nil {
		var parts []string
		for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				parts = append(parts, line)
			}
		}
		holder.Address.Physical = insurer.String(strings.Join(parts, ", "))
	}

	if m := reCell.FindStringSubmatch(text); m != nil {
		holder.Contact.Cell = insurer.String(strings.ReplaceAll(strings.TrimSpace(m[1]), " ", ""))
	}

	holder.Contact.Email = insurer.FirstGroup(text, reHolderEmail)
	holder.DateOfBirth = insurer.FirstGroup(text, reDateOfBirth)

	policy.Policyholder = holder
}

var (
	reBrokerSection = regexp.MustCompile(`(?is)Broker details(.*?)(?:Insurer details|$)`)
	reCompany       = regexp.MustCompile(`Company\s*:\s*([^\n]+)`)
	reBranch        = regexp.MustCompile(`Branch\s*:\s*([^\n]+)`)
	reTel           = regexp.MustCompile(`Tel\s+([^\n]+)`)
	reEmail         = regexp.MustCompile(`E-mail\s+([^\s\n]+@[^\s\n]+)`)
	reLicenceNumber = regexp.MustCompile(`Licence Number\s+(\d+)`)
	reWebsite       = regexp.MustCompile(`Website\s+([^\s\n]+)`)
	reWork          = regexp.MustCompile(`Work\s+([^\n]+)`)
)

func (p *Parser) parseBroker(text string, policy *Policy) {
	broker := Party{}
	if m := reBrokerSection.FindStringSubmatch(text); m != nil {
		section := m[1]
		broker.Company = insurer.FirstGroup(section, reCompany)
		broker.Branch = insurer.FirstGroup(section, reBranch)
		broker.Contact.Tel = insurer.FirstGroup(section, reTel)
		broker.Contact.Email = insurer.FirstGroup(section, reEmail)
		broker.FspLicence = insurer.FirstGroup(section, reLicenceNumber)
	}
	policy.Broker = broker
}

var reInsurerSection = regexp.MustCompile(`(?is)Insurer details(.*?)(?:DETAILS OF ADMINISTRATOR|$)`)

func (p *Parser) parseInsurerDetails(text string, policy *Policy) {
	details := Party{}
	if m := reInsurerSection.FindStringSubmatch(text); m != nil {
		section := m[1]
		details.Company = insurer.FirstGroup(section, reCompany)
		details.Contact.Tel = insurer.FirstGroup(section, reTel)
		details.Contact.Website = insurer.FirstGroup(section, reWebsite)
		details.FspLicence = insurer.FirstGroup(section, reLicenceNumber)
	}
	policy.InsurerDetails = details
}

var reAdminSection = regexp.MustCompile(`(?is)DETAILS OF ADMINISTRATOR(.*?)(?:PREMIUM SCHEDULE|Print date)`)

func (p *Parser) parseAdministrator(text string, policy *Policy) {
	admin := Party{}
	if m := reAdminSection.FindStringSubmatch(text); m != nil {
		section := m[1]
		admin.Company = insurer.FirstGroup(section, reCompany)
		admin.Contact.Tel = insurer.FirstGroup(section, reWork)
		admin.Contact.Email = insurer.FirstGroup(section, reEmail)
		admin.Contact.Website = insurer.FirstGroup(section, reWebsite)
		admin.FspLicence = insurer.FirstGroup(section, reLicenceNumber)
	}
	policy.Administrator = admin
}

var (
	reScheduleSection = regexp.MustCompile(`(?s)PREMIUM SCHEDULE AND INDEX OF COVER(.*?)(?:NOTE TO POLICYHOLDER|ACCEPTANCE)`)
	reScheduleRow     = regexp.MustCompile(`(\d+)\s+([\w\s-]+?)\s+(YES|NO)\s+(YES|NO)\s+(?:R\s*)?([\d\s,]+|-)\s+R\s*([\d\s,.]+|-)\s+R?\s*([\d\s,.]+|-)`)
	reTotalPremium    = regexp.MustCompile(`Total Premium\s+R\s*-?\s*R\s*([\d\s,.]+)`)
	reTotalFees       = regexp.MustCompile(`Total Fees\s+R\s*-?\s*R\s*([\d\s,.]+)`)
	reInsurancePay    = regexp.MustCompile(`Insurance Payment\s+R\s*-?\s*R\s*([\d\s,.]+)`)
	reSasriaTotal     = regexp.MustCompile(`Sasria\s+R\s*-?\s*R\s*([\d\s,.]+)`)
	reAddServices     = regexp.MustCompile(`Additional Services.*?R\s*-?\s*R\s*([\d\s,.]+)`)
	reGrandTotal      = regexp.MustCompile(`TOTAL\s+R\s*-?\s*R\s*([\d\s,.]+)`)
	reVatNote         = regexp.MustCompile(`VAT of R([\d,.]+)`)
	reCommissionNote  = regexp.MustCompile(`Commission of R([\d,.]+)`)
)

func (p *Parser) parsePremiumSchedule(text string, policy *Policy) {
	schedule := PremiumSchedule{Sections: []*ScheduleSection{}}

	if m := reScheduleSection.FindStringSubmatch(text); m != nil {
		section := m[1]

		for _, row := range reScheduleRow.FindAllStringSubmatch(section, -1) {
			number, err := strconv.Atoi(row[1])
			if err != nil {
				continue
			}
			sec := &ScheduleSection{
				Number:         number,
				Name:           strings.TrimSpace(row[2]),
				Included:       row[3] == "YES",
				SasriaIncluded: row[4] == "YES",
				SumInsured:     insurer.CleanAmount(row[5]),
				Prorata:        insurer.CleanAmount(row[6]),
				MonthlyPremium: insurer.CleanAmount(row[7]),
			}
			if sec.Included {
				schedule.Sections = append(schedule.Sections, sec)
			}
		}

		if m := reTotalPremium.FindStringSubmatch(section); m != nil {
			schedule.TotalPremium = insurer.CleanAmount(m[1])
		}
		if m := reTotalFees.FindStringSubmatch(section); m != nil {
			schedule.TotalFees = insurer.CleanAmount(m[1])
		}
		if m := reInsurancePay.FindStringSubmatch(section); m != nil {
			schedule.InsurancePayment = insurer.CleanAmount(m[1])
		}
		if m := reSasriaTotal.FindStringSubmatch(section); m != nil {
			schedule.Sasria = insurer.CleanAmount(m[1])
		}
		if m := reAddServices.FindStringSubmatch(section); m != nil {
			schedule.AdditionalServices = insurer.CleanAmount(m[1])
		}
		if m := reGrandTotal.FindStringSubmatch(section); m != nil {
			schedule.GrandTotal = insurer.CleanAmount(m[1])
		}
	}

	if m := reVatNote.FindStringSubmatch(text); m != nil {
		schedule.VatAmount = insurer.CleanAmount(m[1])
	}
	if m := reCommissionNote.FindStringSubmatch(text); m != nil {
		schedule.CommissionAmount = insurer.CleanAmount(m[1])
	}

	policy.PremiumSchedule = schedule
	policy.TotalPremium = schedule.TotalPremium
	policy.TotalFees = schedule.TotalFees
	policy.Sasria = schedule.Sasria
	policy.GrandTotal = schedule.GrandTotal
}
