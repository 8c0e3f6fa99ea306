package insights

import (
	"strconv"
	"strings"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// MessageKey identifies an advice message template.
type MessageKey string

const (
	msgSetBudgetFirst MessageKey = "set_budget_first"
	msgOverBudget     MessageKey = "over_budget_alert"
	msgNearLimit      MessageKey = "near_limit_alert"
	msgConcentration  MessageKey = "concentration_alert"
	msgFoodTip        MessageKey = "food_tip"
	msgTransportTip   MessageKey = "transport_tip"
	msgClothingTip    MessageKey = "clothing_tip"
	msgSaveHalf       MessageKey = "save_half_tip"
	msgSubscriptions  MessageKey = "subscriptions_tip"
	msgGoodJob        MessageKey = "good_job"
)

// templates maps each supported locale to its message template set. Wording
// lives here and only here; the rule engine stays free of natural language.
var templates = map[entity.Locale]map[MessageKey]string{
	entity.LocaleEnglish: {
		msgSetBudgetFirst: "Set a monthly budget to unlock a detailed spending analysis.",
		msgOverBudget:     "You have exceeded your budget by {percent}%.",
		msgNearLimit:      "You have spent more than {percent}% of your budget.",
		msgConcentration:  "Your spending on {category} represents {percent}% of the total. Consider diversifying.",
		msgFoodTip:        "You have spent {percent}% on food. To reduce this, try planning your weekly meals and look for supermarket discounts.",
		msgTransportTip:   "Your transport spending is {percent}%. Consider public transport, cycling or carpooling to save.",
		msgClothingTip:    "{percent}% of your spending goes to clothing. Look for end-of-season sales or explore secondhand stores.",
		msgSaveHalf:       "You are doing great! You have spent less than half of your budget. You could set aside about {amount} and still keep a cushion.",
		msgSubscriptions:  "Review your monthly subscriptions (streaming, apps, etc.). There are often services you no longer use that you can cancel for easy savings.",
		msgGoodJob:        "Excellent work! Your spending is well balanced this month. Keep it up!",
	},
	entity.LocaleSpanish: {
		msgSetBudgetFirst: "Define un presupuesto mensual para obtener un análisis detallado de tus gastos.",
		msgOverBudget:     "Has superado tu presupuesto en un {percent}%.",
		msgNearLimit:      "Has gastado más del {percent}% de tu presupuesto.",
		msgConcentration:  "Tu gasto principal en {category} representa un {percent}% del total. Considera diversificar.",
		msgFoodTip:        "Has gastado un {percent}% en comida. Para reducir este gasto, intenta planificar tus comidas semanales y aprovecha ofertas en supermercados.",
		msgTransportTip:   "Tu gasto en transporte es del {percent}%. Considera usar transporte público, bicicleta o compartir coche para ahorrar.",
		msgClothingTip:    "Un {percent}% de tus gastos es en ropa. Busca ofertas de fin de temporada o explora tiendas de segunda mano.",
		msgSaveHalf:       "¡Vas muy bien! Has gastado menos de la mitad de tu presupuesto. Podrías apartar unos {amount} y aun así mantener un colchón.",
		msgSubscriptions:  "Revisa tus suscripciones mensuales (streaming, apps, etc.). A menudo hay servicios que ya no usas y que puedes cancelar para un ahorro fácil.",
		msgGoodJob:        "¡Excelente trabajo! Tus gastos están bien equilibrados este mes. ¡Sigue así!",
	},
}

// categoryNames maps categories to their locale display names. Output never
// contains the internal enumeration tokens directly.
var categoryNames = map[entity.Locale]map[entity.Category]string{
	entity.LocaleEnglish: {
		entity.CategoryFood:      "Food",
		entity.CategoryTransport: "Transport",
		entity.CategoryClothing:  "Clothing",
		entity.CategoryHome:      "Home",
		entity.CategoryOther:     "Other",
	},
	entity.LocaleSpanish: {
		entity.CategoryFood:      "Comida",
		entity.CategoryTransport: "Transporte",
		entity.CategoryClothing:  "Ropa",
		entity.CategoryHome:      "Hogar",
		entity.CategoryOther:     "Otros",
	},
}

// monthAbbreviations maps locales to short month names for trend labels.
var monthAbbreviations = map[entity.Locale][12]string{
	entity.LocaleEnglish: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	entity.LocaleSpanish: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
}

// MessageArgs holds the values substituted into a message template. Fields
// that a template does not reference are ignored.
type MessageArgs struct {
	Percent  int
	Category string
	Amount   string
}

// NormalizeLocale maps unsupported locales to the default.
func NormalizeLocale(locale entity.Locale) entity.Locale {
	if entity.IsValidLocale(locale) {
		return locale
	}
	return entity.DefaultLocale
}

// CategoryName returns the locale display name for a category.
func CategoryName(locale entity.Locale, category entity.Category) string {
	if name, ok := categoryNames[NormalizeLocale(locale)][category]; ok {
		return name
	}
	return string(category)
}

// message renders a template for the given locale, substituting the
// {percent}, {category} and {amount} placeholders.
func message(locale entity.Locale, key MessageKey, args MessageArgs) string {
	tpl := templates[NormalizeLocale(locale)][key]
	tpl = strings.ReplaceAll(tpl, "{percent}", strconv.Itoa(args.Percent))
	tpl = strings.ReplaceAll(tpl, "{category}", args.Category)
	tpl = strings.ReplaceAll(tpl, "{amount}", args.Amount)
	return tpl
}
