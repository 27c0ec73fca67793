package location

func region(name string) *string {
	return &name
}

// Catalog returns the locations seeded into a fresh installation
func Catalog() []Location {
	return []Location{
		{Name: "Dar es Salaam", Region: region("Dar es Salaam"), Latitude: -6.7924, Longitude: 39.2083, Timezone: DefaultTimezone},
		{Name: "Mwanza", Region: region("Mwanza"), Latitude: -2.5164, Longitude: 32.8987, Timezone: DefaultTimezone},
		{Name: "Arusha", Region: region("Arusha"), Latitude: -3.3869, Longitude: 36.68299, Timezone: DefaultTimezone},
		{Name: "Dodoma", Region: region("Dodoma"), Latitude: -6.163, Longitude: 35.7516, Timezone: DefaultTimezone},
		{Name: "Zanzibar City", Region: region("Zanzibar"), Latitude: -6.1659, Longitude: 39.2026, Timezone: DefaultTimezone},
		{Name: "Mbeya", Region: region("Mbeya"), Latitude: -8.9094, Longitude: 33.46, Timezone: DefaultTimezone},
		{Name: "Tanga", Region: region("Tanga"), Latitude: -5.0692, Longitude: 39.0987, Timezone: DefaultTimezone},
		{Name: "Kigoma", Region: region("Kigoma"), Latitude: -4.876, Longitude: 29.6266, Timezone: DefaultTimezone},
	}
}
