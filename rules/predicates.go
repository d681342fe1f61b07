package rules

// Vocabulary predicates for ruleset entities.
// Uses three-part dotted notation: domain.category.property
const (
	// Identity predicates
	Version = "ruleset.version.number"

	// Citation predicates
	Citation = "ruleset.rule.citation" // article/section/clause citation

	// Rule predicates
	RuleID       = "ruleset.rule.id"
	RuleText     = "ruleset.rule.text"
	RuleCategory = "ruleset.rule.category" // qualification|procedure|prohibition|apportionment|succession
	RulePriority = "ruleset.rule.priority" // must|should|may
	RuleEnforced = "ruleset.rule.enforced" // bool

	// Standard metadata (Dublin Core aligned)
	DcTitle    = "dc.terms.title"
	DcCreated  = "dc.terms.created"
	DcModified = "dc.terms.modified"
)

// RulePriorityValue represents the enforcement priority of a rule
type RulePriorityValue string

// PriorityMust requires compliance; violations fail the check.
// PriorityShould is recommended; violations produce warnings.
// PriorityMay is informational only.
const (
	PriorityMust   RulePriorityValue = "must"
	PriorityShould RulePriorityValue = "should"
	PriorityMay    RulePriorityValue = "may"
)

// CategoryName classifies what a rule governs.
type CategoryName string

// CategoryQualification and related constants enumerate the rule categories.
const (
	CategoryQualification CategoryName = "qualification"
	CategoryProcedure     CategoryName = "procedure"
	CategoryProhibition   CategoryName = "prohibition"
	CategoryApportionment CategoryName = "apportionment"
	CategorySuccession    CategoryName = "succession"
)

// ArticleRef cites the article a rule derives from.
type ArticleRef string

// Article references used by the built-in ruleset.
const (
	RefArticleI   ArticleRef = "article_i"
	RefArticleII  ArticleRef = "article_ii"
	RefArticleIII ArticleRef = "article_iii"
	RefArticleVI  ArticleRef = "article_vi"
	RefAmendments ArticleRef = "amendments"
)
