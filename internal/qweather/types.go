package qweather

type GeoResponse struct {
	Code     string     `json:"code"`
	Location []Location `json:"location"`
}

// Location coordinates arrive as decimal strings.
type Location struct {
	Name    string `json:"name"`
	Id      string `json:"id"`
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Adm2    string `json:"adm2"`
	Adm1    string `json:"adm1"`
	Country string `json:"country"`
	Tz      string `json:"tz"`
}
