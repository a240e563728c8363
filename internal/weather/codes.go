package weather

// descriptions maps WMO weather interpretation codes to a human description.
var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// UnknownDescription is returned for codes missing from the table.
const UnknownDescription = "Unknown"

// Icon identifiers, named after the OpenWeather icon set.
const (
	IconClearSky     = "01d"
	IconPartlyCloudy = "02d"
	IconOvercast     = "04d"
	IconFog          = "50d"
	IconShowers      = "09d"
	IconRain         = "10d"
	IconSnow         = "13d"
	IconThunderstorm = "11d"
)

type iconRange struct {
	upTo int // inclusive
	icon string
}

// iconRanges must stay sorted by upTo: the first range containing a code wins,
// so a wider bound placed earlier would swallow the codes after it.
var iconRanges = []iconRange{
	{0, IconClearSky},
	{2, IconPartlyCloudy},
	{3, IconOvercast},
	{48, IconFog},
	{55, IconShowers}, // drizzle
	{65, IconRain},
	{77, IconSnow},
	{82, IconShowers}, // rain showers
	{86, IconSnow},    // snow showers
}

// Describe maps a weather code to its description and icon. It is total:
// unknown codes get UnknownDescription and anything above the last range gets
// the thunderstorm icon.
func Describe(code int) Condition {
	return Condition{
		Code:        code,
		Description: describeCode(code),
		Icon:        iconFor(code),
	}
}

func describeCode(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return UnknownDescription
}

func iconFor(code int) string {
	for _, r := range iconRanges {
		if code <= r.upTo {
			return r.icon
		}
	}
	return IconThunderstorm
}
