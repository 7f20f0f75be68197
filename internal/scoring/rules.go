package scoring

// RuleKey identifies a scoring rule variant
type RuleKey string

const (
	// RuleRegular gives a bonus for exact bids and never subtracts
	RuleRegular RuleKey = "regular"

	// RuleAlternate rewards every exact bid and penalises misses
	RuleAlternate RuleKey = "alternate"

	// RuleShing is Shing's house rules, with a hands-scaled zero bid
	RuleShing RuleKey = "shing"

	// DefaultRule is the variant a new ledger starts with
	DefaultRule = RuleShing
)

// Rule is one of the fixed scoring variants
type Rule struct {
	// Key is the stored identifier of the variant
	Key RuleKey

	// Name is the display name shown in the rules menu
	Name string

	// Details are human-readable lines describing how points are awarded
	Details []string

	points func(bid, tricks, hands int) int
}

// Points returns the points for a round where both the bid and the tricks
// taken are known.
func (r Rule) Points(bid, tricks, hands int) int {
	return r.points(bid, tricks, hands)
}

// Score is the nil-aware form of Points: it returns nil until both the bid
// and the tricks taken have been entered.
func (r Rule) Score(bid, tricks *int, hands int) *int {
	if bid == nil || tricks == nil {
		return nil
	}
	points := r.points(*bid, *tricks, hands)
	return &points
}

var variants = []Rule{
	{
		Key:  RuleRegular,
		Name: "Regular",
		Details: []string{
			"+1 point for each trick",
			"+10 points for taking the exact number of tricks bid (for non-zero bids)",
			"+5 points for taking zero tricks (for bids of zero)",
		},
		points: func(bid, tricks, _ int) int {
			if bid != tricks {
				return tricks
			}
			if bid > 0 {
				return tricks + 10
			}
			return tricks + 5
		},
	},
	{
		Key:  RuleAlternate,
		Name: "Alternate",
		Details: []string{
			"+1 point for each trick",
			"+10 points for taking the exact number of tricks bid (including bids of zero)",
			"-5 points for missing your bid",
		},
		points: func(bid, tricks, _ int) int {
			if bid == tricks {
				return tricks + 10
			}
			return tricks - 5
		},
	},
	{
		Key:  RuleShing,
		Name: "Shing's house rules",
		Details: []string{
			"+1 point for each trick",
			"+10 points for taking the exact number of tricks bid (for non-zero bids)",
			"The greater of 5 points or the number of hands in the round for taking zero tricks (for bids of zero)",
			"-5 points for missing your bid",
		},
		points: func(bid, tricks, hands int) int {
			switch {
			case bid != tricks:
				return tricks - 5
			case bid > 0:
				return tricks + 10
			default:
				return max(hands, 5)
			}
		},
	},
}

// Variants returns every rule variant in menu order
func Variants() []Rule {
	out := make([]Rule, len(variants))
	copy(out, variants)
	return out
}

// LookupRule finds the variant for key
func LookupRule(key RuleKey) (Rule, error) {
	for _, rule := range variants {
		if rule.Key == key {
			return rule, nil
		}
	}
	return Rule{}, ErrUnknownRule
}

// IsValid reports whether key names a known variant
func (k RuleKey) IsValid() bool {
	_, err := LookupRule(k)
	return err == nil
}
