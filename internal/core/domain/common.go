package domain

// EntityKind names one of the five persisted collections.
type EntityKind string

const (
	KindExchangeRate      EntityKind = "exchangeRates"
	KindEconomicIndicator EntityKind = "indicators"
	KindChartDataPoint    EntityKind = "charts"
	KindMarketQuote       EntityKind = "market"
	KindNewsItem          EntityKind = "news"
)

// AllEntityKinds lists the collections in seeding order.
var AllEntityKinds = []EntityKind{
	KindExchangeRate,
	KindEconomicIndicator,
	KindMarketQuote,
	KindChartDataPoint,
	KindNewsItem,
}

// Trend is a direction hint shown next to a value. Values outside the
// well-known set are legal and passed through untouched.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// ChartDateLayout is the layout of ChartDataPoint.Time.
const ChartDateLayout = "2006-01-02"
