package discovery

import (
	"regexp"
	"sort"
	"strings"

	"polisched/internal/insurer"
)

// Benefits Discovery commonly bundles at no cost.
var knownBenefits = []string{
	"Car hire",
	"24-hour emergency roadside services",
	"HomeAssist",
	"Home Protector",
	"Emergency roadside",
}

var (
	reBenefitsSection = regexp.MustCompile(`(?s)Benefits included at no cost\s+(.*?)(?:Additional Benefits|SASRIA|Vitalitydrive)`)
	reBenefitItems    = regexp.MustCompile(`([A-Za-z\s-]+(?:services|hire|Assist|Protector)?)\s+R\s*0\.00`)
)

func (p *Parser) parseBenefitsAtNoCost(text string, policy *Policy) {
	var benefits []string
	lower := strings.ToLower(text)

	for _, benefit := range knownBenefits {
		if !strings.Contains(lower, strings.ToLower(benefit)) {
			continue
		}
		freeRe := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(benefit) + `.*?R\s*0\.00`)
		if freeRe.MatchString(text) {
			benefits = append(benefits, benefit)
		} else if strings.Contains(text, "Benefits included at no cost") && strings.Contains(text, benefit) {
			benefits = append(benefits, benefit)
		}
	}

	if m := reBenefitsSection.FindStringSubmatch(text); m != nil {
		for _, im := range reBenefitItems.FindAllStringSubmatch(m[1], -1) {
			item := strings.TrimSpace(im[1])
			if item != "" && !contains(benefits, item) {
				benefits = append(benefits, item)
			}
		}
	}

	if benefits == nil {
		benefits = []string{}
	}
	policy.BenefitsAtNoCost = benefits
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

var (
	reVitalityActive   = regexp.MustCompile(`(?i)Vitalitydrive\s+Active`)
	reVitalityPremium  = regexp.MustCompile(`(?m)Vitalitydrive[\s\S]*?R([\d,.]+)\s*$`)
	reVitalityFallback = regexp.MustCompile(`(?is)Vitalitydrive.*?R([\d,.]+)`)
	reVitalityReward   = regexp.MustCompile(`Rewards:\s*([A-Za-z\s]+?)(?:\n|R\d|$)`)
	reVitalityMembers  = []*regexp.Regexp{
		regexp.MustCompile(`Active\s+([A-Z][a-z]+\s+[A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s+Gautrain|\s+Rewards|\n)`),
		regexp.MustCompile(`Vitalitydrive[\s\S]*?Active\s+([A-Z][a-z]+\s+[A-Z][a-z]+\s+[A-Z][a-z]+)`),
	}

	memberBlocklist = []string{"bond", "indicator", "active", "gautrain", "rewards", "card"}
)

func (p *Parser) parseVitalityDrive(text string, policy *Policy) {
	vitality := VitalityDrive{Members: []string{}}

	if strings.Contains(text, "Vitalitydrive") || strings.Contains(text, "VitalityDrive") {
		if reVitalityActive.MatchString(text) || strings.Contains(text, "Active") {
			vitality.Status = insurer.String("Active")
		}

		if m := reVitalityPremium.FindStringSubmatch(text); m != nil {
			vitality.Premium = insurer.CleanAmount(m[1])
		} else if m := reVitalityFallback.FindStringSubmatch(text); m != nil {
			vitality.Premium = insurer.CleanAmount(m[1])
		}

		if m := reVitalityReward.FindStringSubmatch(text); m != nil {
			reward := strings.TrimSpace(m[1])
			if reward != "" && !strings.HasPrefix(reward, "R") {
				vitality.RewardType = insurer.String(reward)
			}
		}

		members := map[string]bool{}
		for _, re := range reVitalityMembers {
			for _, m := range re.FindAllStringSubmatch(text, -1) {
				name := strings.TrimSpace(m[1])
				if validMemberName(name) {
					members[name] = true
				}
			}
		}

		// Primary drivers are Vitalitydrive members too.
		for _, v := range policy.MotorVehicles {
			if v.PrimaryDriver == nil {
				continue
			}
			name := strings.TrimSpace(*v.PrimaryDriver)
			if name != "" && len(name) > 5 && !matchesBlocklist(name, []string{"bond", "indicator", "active"}) {
				members[name] = true
			}
		}

		for name := range members {
			vitality.Members = append(vitality.Members, name)
		}
		sort.Strings(vitality.Members)
	}

	policy.VitalityDrive = vitality
}

func validMemberName(name string) bool {
	return name != "" && len(name) > 5 && !matchesBlocklist(name, memberBlocklist)
}

func matchesBlocklist(name string, blocked []string) bool {
	lower := strings.ToLower(name)
	for _, b := range blocked {
		if strings.Contains(lower, b) {
			return true
		}
	}
	return false
}

var (
	reMaxCommission = []*regexp.Regexp{
		regexp.MustCompile(`(?is)Maximum commission or referral fees[^\d]*?R\s*([\d,.\s]+)`),
		regexp.MustCompile(`(?is)Maximum commission[^\d]*?R\s*([\d,.\s]+)`),
		regexp.MustCompile(`(?is)commission.*?included.*?R\s*([\d,.\s]+)`),
	}
	reRateNonMotor       = regexp.MustCompile(`(\d+)\s*%\s*of the non-motor premium`)
	reRateMotor          = regexp.MustCompile(`(\d+\.?\d*)\s*%\s*of the motor premium`)
	reRateNonMotorSasria = regexp.MustCompile(`(\d+)\s*%\s*of the non-motor SASRIA`)
	reRateMotorSasria    = regexp.MustCompile(`(\d+\.?\d*)\s*%\s*of the motor SASRIA`)
	reRateMotorSasriaAlt = regexp.MustCompile(`(?i)motor SASRIA premium.*?(\d+\.?\d*)\s*%`)
	reRateVitality       = regexp.MustCompile(`(\d+\.?\d*)\s*%\s*of the Vitalitydrive`)
)

func (p *Parser) parseCommission(text string, policy *Policy) {
	commission := Commission{}

	for _, re := range reMaxCommission {
		if m := re.FindStringSubmatch(text); m != nil {
			if amt := insurer.CleanAmount(m[1]); amt != nil && *amt > 100 {
				commission.MaximumCommission = amt
				break
			}
		}
	}

	if strings.Contains(text, "VAT is included") {
		commission.VatIncluded = true
	}

	commission.Rates.NonMotor = percentage(text, reRateNonMotor)
	commission.Rates.Motor = percentage(text, reRateMotor)
	commission.Rates.NonMotorSasria = percentage(text, reRateNonMotorSasria)

	if g := percentage(text, reRateMotorSasria); g != nil {
		commission.Rates.MotorSasria = g
	} else {
		commission.Rates.MotorSasria = percentage(text, reRateMotorSasriaAlt)
	}

	commission.Rates.Vitalitydrive = percentage(text, reRateVitality)

	policy.Commission = commission
}

func percentage(text string, re *regexp.Regexp) *string {
	if m := re.FindStringSubmatch(text); m != nil {
		return insurer.String(m[1] + "%")
	}
	return nil
}
