package core

// WholeYear is the month sentinel that selects every month of a year.
const WholeYear = 0

// Summary bundles the aggregate figures for one period.
type Summary struct {
	Year     int
	Month    int // 1-12, or WholeYear
	Orders   int
	Revenue  float64
	Discount float64
	GiftCost float64
}

// FilterByPeriod keeps orders whose date falls in the given year, and in the
// given 1-indexed month unless month is WholeYear. Orders with unknown dates
// never match.
func FilterByPeriod(orders []Order, year, month int) []Order {
	var out []Order
	for _, o := range orders {
		if !o.Date.Known() {
			continue
		}
		if o.Date.Year() != year {
			continue
		}
		if month != WholeYear && o.Date.Month() != month {
			continue
		}
		out = append(out, o)
	}
	return out
}

// SumItemPrices returns the raw price total of an order, before discount and
// gift separation.
func SumItemPrices(o Order) float64 {
	var sum float64
	for _, it := range o.Items {
		sum += ParseAmount(it.Price)
	}
	return sum
}

// TotalRevenue is the raw item-price total across orders. Discounts and gift
// flags are not subtracted here.
func TotalRevenue(orders []Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += SumItemPrices(o)
	}
	return sum
}

// TotalDiscount sums each order's discount: the order's percentage applied
// to its raw price total. Discount and gift cost are computed independently
// from the same base, not chained.
func TotalDiscount(orders []Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += SumItemPrices(o) * ParsePercent(o.DiscountPercent) / 100
	}
	return sum
}

// TotalGiftCost sums the prices of items flagged as gifts: money spent that
// was never collected as revenue.
func TotalGiftCost(orders []Order) float64 {
	var sum float64
	for _, o := range orders {
		for _, it := range o.Items {
			if it.IsGift {
				sum += ParseAmount(it.Price)
			}
		}
	}
	return sum
}

// Summarize filters by period and computes the full summary in one call.
func Summarize(orders []Order, year, month int) Summary {
	filtered := FilterByPeriod(orders, year, month)
	return Summary{
		Year:     year,
		Month:    month,
		Orders:   len(filtered),
		Revenue:  TotalRevenue(filtered),
		Discount: TotalDiscount(filtered),
		GiftCost: TotalGiftCost(filtered),
	}
}
