package weather

import "github.com/i474232898/city-weather/internal/common"

// CityAliases maps Arabic-script city names to the English names the
// geocoder understands best. It is not authoritative: names missing here are
// geocoded as typed.
var CityAliases = map[string]string{
	"القاهرة":     "Cairo",
	"الإسكندرية":  "Alexandria",
	"الجيزة":      "Giza",
	"الرياض":      "Riyadh",
	"جدة":         "Jeddah",
	"مكة":         "Mecca",
	"المدينة":     "Medina",
	"دبي":         "Dubai",
	"أبوظبي":      "Abu Dhabi",
	"الدوحة":      "Doha",
	"الكويت":      "Kuwait City",
	"المنامة":     "Manama",
	"مسقط":        "Muscat",
	"عمان":        "Amman",
	"بيروت":       "Beirut",
	"دمشق":        "Damascus",
	"بغداد":       "Baghdad",
	"القدس":       "Jerusalem",
	"تونس":        "Tunis",
	"الجزائر":     "Algiers",
	"الرباط":      "Rabat",
	"الدار البيضاء": "Casablanca",
	"طرابلس":      "Tripoli",
	"الخرطوم":     "Khartoum",
	"صنعاء":       "Sanaa",
	"لندن":        "London",
	"باريس":       "Paris",
	"نيويورك":     "New York",
	"طوكيو":       "Tokyo",
	"إسطنبول":     "Istanbul",
}

// TranslateCity cleans name and replaces it with its alias when one exists.
// A nil aliases map disables translation.
func TranslateCity(name string, aliases map[string]string) string {
	name = common.CleanName(name)
	if english, ok := aliases[name]; ok {
		return english
	}
	return name
}
