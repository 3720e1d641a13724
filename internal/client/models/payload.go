package models

// FormField is a plain multipart value.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a multipart file part read from Path when the request is sent.
type FormFile struct {
	Field string
	Path  string
}

// Payload describes a multipart/form-data body independently of transport.
type Payload struct {
	Fields []FormField
	Files  []FormFile
}

func (p *Payload) Add(name, value string) {
	p.Fields = append(p.Fields, FormField{Name: name, Value: value})
}

func (p *Payload) AddFile(field, path string) {
	p.Files = append(p.Files, FormFile{Field: field, Path: path})
}

// Value returns the first field with the given name.
func (p Payload) Value(name string) (string, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// File returns the path attached to the given field.
func (p Payload) File(field string) (string, bool) {
	for _, f := range p.Files {
		if f.Field == field {
			return f.Path, true
		}
	}
	return "", false
}
