package phregion

// Codes gets the code of every region, in the same order as Regions.
func Codes() []string {
	return project(Region.Code)
}

// Abbrevs gets the abbreviation of every region, in the same order as Regions.
func Abbrevs() []string {
	return project(Region.Abbrev)
}

// Names gets the name of every region, in the same order as Regions.
func Names() []string {
	return project(Region.Name)
}

// List maps region codes to names.
func List() map[string]string {
	return catalog(Region.Name)
}

// ListByFullName maps region codes to full names.
func ListByFullName() map[string]string {
	return catalog(Region.FullName)
}

func project(fn func(Region) string) []string {
	rs := Regions()
	s := make([]string, len(rs))
	for i, r := range rs {
		s[i] = fn(r)
	}
	return s
}

func catalog(fn func(Region) string) map[string]string {
	rs := Regions()
	m := make(map[string]string, len(rs))
	for _, r := range rs {
		m[r.Code()] = fn(r)
	}
	return m
}
