package norms

// Qualitative banding tables per method. Thresholds are conventional
// psychometric cut points.

func interpretFallback(v float64) string {
	switch {
	case v >= 80:
		return "High"
	case v >= 60:
		return "Above Average"
	case v >= 40:
		return "Average"
	case v >= 20:
		return "Below Average"
	default:
		return "Low"
	}
}

func interpretPercentile(p float64) string {
	switch {
	case p >= 98:
		return "Extremely High (Top 2%)"
	case p >= 91:
		return "Very High (Top 9%)"
	case p >= 75:
		return "High (Top 25%)"
	case p >= 25:
		return "Average"
	case p >= 9:
		return "Low (Bottom 25%)"
	case p >= 2:
		return "Very Low (Bottom 9%)"
	default:
		return "Extremely Low (Bottom 2%)"
	}
}

func interpretZ(z float64) string {
	switch {
	case z >= 2.0:
		return "Extremely High (+2.0 SD)"
	case z >= 1.5:
		return "Very High (+1.5 SD)"
	case z >= 1.0:
		return "High (+1.0 SD)"
	case z >= 0.5:
		return "Above Average (+0.5 SD)"
	case z > -0.5:
		return "Average"
	case z > -1.0:
		return "Below Average (-0.5 SD)"
	case z > -1.5:
		return "Low (-1.0 SD)"
	case z > -2.0:
		return "Very Low (-1.5 SD)"
	default:
		return "Extremely Low (-2.0 SD)"
	}
}

func interpretSten(s int) string {
	switch {
	case s <= 1:
		return "Very Low"
	case s <= 3:
		return "Low"
	case s <= 5:
		return "Average"
	case s <= 7:
		return "Above Average"
	case s <= 9:
		return "High"
	default:
		return "Very High"
	}
}

func interpretT(t float64) string {
	switch {
	case t >= 70:
		return "Very High"
	case t >= 60:
		return "High"
	case t >= 45:
		return "Average"
	case t >= 35:
		return "Low"
	default:
		return "Very Low"
	}
}
