package classifier

// CategoryRule pairs a category label with the keywords that indicate
// it. Keyword matching is case-sensitive substring search.
type CategoryRule struct {
	// Category is the topical label used in generated names.
	Category string `yaml:"category"`

	// Keywords are the indicator strings for this category.
	Keywords []string `yaml:"keywords"`
}

// RuleTable is an ordered set of category rules. Declaration order is
// significant: classification is first-match-wins, so earlier rules
// shadow later ones when several categories meet the threshold.
//
// A RuleTable is constructed once at startup and never mutated.
type RuleTable struct {
	rules []CategoryRule
}

// NewRuleTable builds an immutable rule table from the given rules.
// The slice is copied so later mutation by the caller has no effect.
func NewRuleTable(rules []CategoryRule) *RuleTable {
	copied := make([]CategoryRule, len(rules))
	copy(copied, rules)
	return &RuleTable{rules: copied}
}

// Rules returns a copy of the rules in declaration order.
func (t *RuleTable) Rules() []CategoryRule {
	out := make([]CategoryRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules in the table.
func (t *RuleTable) Len() int {
	return len(t.rules)
}

// DefaultRules returns the built-in category table, covering the
// script topics the vault collects. Order matters; see RuleTable.
func DefaultRules() *RuleTable {
	return NewRuleTable([]CategoryRule{
		{
			Category: "ActiveDirectory",
			Keywords: []string{"Get-ADUser", "Get-ADGroup", "Get-ADComputer", "Active Directory", "Import-Module ActiveDirectory"},
		},
		{
			Category: "Azure",
			Keywords: []string{"Connect-AzAccount", "Get-AzVM", "Get-AzResource", "Az.Accounts", "azure"},
		},
		{
			Category: "AWS",
			Keywords: []string{"aws ec2", "aws s3", "Get-EC2Instance", "boto3", "aws cli"},
		},
		{
			Category: "Exchange",
			Keywords: []string{"Get-Mailbox", "Get-ExchangeServer", "Exchange Online", "Get-MailboxStatistics"},
		},
		{
			Category: "Network",
			Keywords: []string{"Test-Connection", "Test-NetConnection", "ping", "traceroute", "ipconfig", "Get-NetAdapter"},
		},
		{
			Category: "Security",
			Keywords: []string{"Get-Acl", "Set-Acl", "firewall", "Get-EventLog", "audit"},
		},
		{
			Category: "Backup",
			Keywords: []string{"Backup-", "Copy-Item", "robocopy", "restore"},
		},
	})
}
