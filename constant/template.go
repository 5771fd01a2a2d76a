// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// SubjectToken is the substitution token for the subject URL inside a resolver endpoint template.
const SubjectToken = "{url}"

// SubscriptionTemplate is a Go text/template for scaffolding a single-resolver subscription document.
const SubscriptionTemplate = `{
  "{{ .Key }}": {
    "name": "{{ .Name }}",
    "icon": "{{ .Icon }}",
    "url": "{{ .URL }}",
    "type": "{{ .Type }}",
    "time": "{{ .Timeout }}",
    "Query": {
      "User-Agent": "{{ .UserAgent }}"
    },
    "response": {
      "data": {
        "title": "${title}",
        "author": "${author}",
        "cover": "${cover}",
        "desc": "${description}",
        "duration": "${duration}",
{{- if eq .Type "gallery" }}
        "images": "${imageUrls}"
{{- else }}
        "url": "${videoUrl}"
{{- end }}
      }
    }
  }
}
`
