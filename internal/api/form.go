package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Form builds a multipart/form-data body. The backend only parses files out
// of multipart bodies, so callers use it whenever a pending upload is
// attached and plain JSON otherwise.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	field, fileName, contentType string
	data                         []byte
}

func NewForm() *Form { return &Form{} }

// Set adds a plain field. Empty values are still sent; use SetOptional to
// skip them.
func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name, value})
	return f
}

// SetOptional adds a field only when the value is non-empty, implementing
// the unchanged-field omission rule.
func (f *Form) SetOptional(name, value string) *Form {
	if value != "" {
		f.Set(name, value)
	}
	return f
}

// MethodOverride stamps the `_method` spoof field used by the backend for
// multipart PUT requests, which must travel as POST.
func (f *Form) MethodOverride(method string) *Form {
	return f.Set("_method", method)
}

// AddFile attaches a file part under the given field name (use "images[]"
// style names for list fields).
func (f *Form) AddFile(field, fileName, contentType string, data []byte) *Form {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	f.files = append(f.files, formFile{field, fileName, contentType, data})
	return f
}

// Encode renders the multipart body and returns it with its content type.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", fld.name, err)
		}
	}
	for _, file := range f.files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(file.field), escapeQuotes(file.fileName)))
		hdr.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %q: %w", file.field, err)
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", fmt.Errorf("write file part %q: %w", file.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }
