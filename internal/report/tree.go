package report

// UncategorizedName is the bucket used for expense rows that carry no
// category name.
const UncategorizedName = "Uncategorized"

// Tree accumulates expense amounts over a category -> subcategory
// hierarchy. A row with no subcategory lands in its category's direct
// bucket, which is kept separate from the named subcategories and never
// merged with them.
type Tree struct {
	periods    []Period
	categories map[string]*categoryNode
}

type categoryNode struct {
	direct        PeriodTotals
	subcategories map[string]PeriodTotals
}

// NewTree returns an empty tree that zero-fills every bucket across the
// given periods.
func NewTree(periods []Period) *Tree {
	return &Tree{
		periods:    periods,
		categories: make(map[string]*categoryNode),
	}
}

// Add accumulates amount under (category, subcategory) for the period
// label, creating nodes on demand. An empty category resolves to the
// Uncategorized bucket; an empty subcategory resolves to the category's
// direct bucket.
func (t *Tree) Add(category, subcategory, label string, amount float64) {
	if category == "" {
		category = UncategorizedName
	}
	node := t.resolve(category)
	if subcategory == "" {
		if node.direct == nil {
			node.direct = NewPeriodTotals(t.periods)
		}
		node.direct[label] += amount
		return
	}
	totals, ok := node.subcategories[subcategory]
	if !ok {
		totals = NewPeriodTotals(t.periods)
		node.subcategories[subcategory] = totals
	}
	totals[label] += amount
}

func (t *Tree) resolve(category string) *categoryNode {
	node, ok := t.categories[category]
	if !ok {
		node = &categoryNode{subcategories: make(map[string]PeriodTotals)}
		t.categories[category] = node
	}
	return node
}

// CategoryBucket is the flattened view of one category: its named
// subcategories plus, when present, its direct transactions.
type CategoryBucket struct {
	Subcategories map[string]PeriodTotals `json:"subcategories"`
	Direct        PeriodTotals            `json:"direct,omitempty"`
}

// CategorySection is the flattened view of a whole expense class
// (COGS, OPEX or CAPEX): per-category buckets plus the recursive total.
type CategorySection struct {
	ByCategory map[string]CategoryBucket `json:"expenses_by_category"`
	Total      PeriodTotals              `json:"total"`
}

// Section flattens the tree into the report shape. A category's total is
// the sum of its direct bucket and all subcategory buckets; the section
// total sums every category recursively.
func (t *Tree) Section() CategorySection {
	section := CategorySection{
		ByCategory: make(map[string]CategoryBucket, len(t.categories)),
		Total:      NewPeriodTotals(t.periods),
	}
	for name, node := range t.categories {
		bucket := CategoryBucket{Subcategories: node.subcategories}
		if node.direct != nil {
			bucket.Direct = node.direct
			section.Total.Add(node.direct)
		}
		for _, totals := range node.subcategories {
			section.Total.Add(totals)
		}
		section.ByCategory[name] = bucket
	}
	return section
}

// CategoryTotal returns the recursive total for a single category, zero
// for an unknown category.
func (t *Tree) CategoryTotal(category string) PeriodTotals {
	total := NewPeriodTotals(t.periods)
	node, ok := t.categories[category]
	if !ok {
		return total
	}
	if node.direct != nil {
		total.Add(node.direct)
	}
	for _, totals := range node.subcategories {
		total.Add(totals)
	}
	return total
}
