package geo

// ==================== 大洲国家表 ====================

// Continent 大洲定义：名称 + 成员国家/地区 ISO 3166-1 alpha-2 代码
type Continent struct {
	Name      string
	Countries []string
}

// continents 七大洲静态表，代码 -> 成员国家
var continents = map[string]Continent{
	"AF": {
		Name: "Africa",
		Countries: []string{
			"AO", "BF", "BI", "BJ", "BW", "CD", "CF", "CG", "CI", "CM", "CV", "DJ",
			"DZ", "EG", "EH", "ER", "ET", "GA", "GH", "GM", "GN", "GQ", "GW", "KE",
			"KM", "LR", "LS", "LY", "MA", "MG", "ML", "MR", "MU", "MW", "MZ", "NA",
			"NE", "NG", "RE", "RW", "SC", "SD", "SH", "SL", "SN", "SO", "SS", "ST",
			"SZ", "TD", "TG", "TN", "TZ", "UG", "YT", "ZA", "ZM", "ZW",
		},
	},
	"AN": {
		Name:      "Antarctica",
		Countries: []string{"AQ", "BV", "GS", "HM", "TF"},
	},
	"AS": {
		Name: "Asia",
		Countries: []string{
			"AE", "AF", "AM", "AZ", "BD", "BH", "BN", "BT", "CC", "CN", "CX", "GE",
			"HK", "ID", "IL", "IN", "IO", "IQ", "IR", "JO", "JP", "KG", "KH", "KP",
			"KR", "KW", "KZ", "LA", "LB", "LK", "MM", "MN", "MO", "MV", "MY", "NP",
			"OM", "PH", "PK", "PS", "QA", "SA", "SG", "SY", "TH", "TJ", "TL", "TM",
			"TW", "UZ", "VN", "YE",
		},
	},
	"EU": {
		Name: "Europe",
		Countries: []string{
			"AD", "AL", "AT", "AX", "BA", "BE", "BG", "BY", "CH", "CY", "CZ", "DE",
			"DK", "EE", "ES", "FI", "FO", "FR", "GB", "GG", "GI", "GR", "HR", "HU",
			"IE", "IM", "IS", "IT", "JE", "LI", "LT", "LU", "LV", "MC", "MD", "ME",
			"MK", "MT", "NL", "NO", "PL", "PT", "RO", "RS", "RU", "SE", "SI", "SJ",
			"SK", "SM", "TR", "UA", "VA",
		},
	},
	"NA": {
		Name: "North America",
		Countries: []string{
			"AG", "AI", "AW", "BB", "BL", "BM", "BQ", "BS", "BZ", "CA", "CR", "CU",
			"CW", "DM", "DO", "GD", "GL", "GP", "GT", "HN", "HT", "JM", "KN", "KY",
			"LC", "MF", "MQ", "MS", "MX", "NI", "PA", "PM", "PR", "SV", "SX", "TC",
			"TT", "US", "VC", "VG", "VI",
		},
	},
	"OC": {
		Name: "Oceania",
		Countries: []string{
			"AS", "AU", "CK", "FJ", "FM", "GU", "KI", "MH", "MP", "NC", "NF", "NR",
			"NU", "NZ", "PF", "PG", "PN", "PW", "SB", "TK", "TO", "TV", "UM", "VU",
			"WF", "WS",
		},
	},
	"SA": {
		Name: "South America",
		Countries: []string{
			"AR", "BO", "BR", "CL", "CO", "EC", "FK", "GF", "GY", "PE", "PY", "SR",
			"UY", "VE",
		},
	},
}

// knownCountries 全量国家集合（由大洲表派生）
var knownCountries = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range continents {
		for _, code := range c.Countries {
			set[code] = struct{}{}
		}
	}
	return set
}()

// ContinentCountries 返回大洲包含的国家代码集合
// 未知大洲代码返回空集合（不报错，区域匹配时自然落空）
func ContinentCountries(code string) []string {
	c, ok := continents[code]
	if !ok {
		return nil
	}
	return c.Countries
}

// ContinentName 返回大洲英文名，未知代码返回空串
func ContinentName(code string) string {
	return continents[code].Name
}

// IsKnownCountry 判断国家代码是否在国家表内
func IsKnownCountry(code string) bool {
	_, ok := knownCountries[code]
	return ok
}

// ContinentOf 反查国家所属大洲代码，未找到返回空串
func ContinentOf(country string) string {
	for code, c := range continents {
		for _, member := range c.Countries {
			if member == country {
				return code
			}
		}
	}
	return ""
}
