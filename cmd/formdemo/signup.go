package main

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// newSignupForm builds a fresh controller per request; the demo server keeps
// no form state between requests.
func newSignupForm() *form.Form {
	return form.New(
		form.WithInitialValues(rules.Values{
			"email":    "",
			"password": "",
			"confirm":  "",
			"age":      "",
			"terms":    false,
		}),
		form.WithRules(rules.RuleSet{
			"email":    {rules.Required(), rules.Email()},
			"password": {rules.Required(), rules.StrongPassword()},
			"confirm":  {rules.Required(), rules.Match("password", "passwords do not match")},
			"age":      {rules.Required(), rules.Min(18, "you must be at least 18")},
		}),
	)
}

var signupFieldTypes = form.FieldTypes{
	"age":   form.InputNumber,
	"terms": form.InputCheckbox,
}

type signupPage struct {
	Values  rules.Values
	Errors  form.Errors
	Success bool
}

func handleShowSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := newSignupForm()
		render(w, http.StatusOK, signupPage{Values: f.Values(), Errors: form.Errors{}})
	}
}

func handleSubmitSignup(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form data", http.StatusBadRequest)
			return
		}

		f := newSignupForm()
		f.Bind(r.PostForm, signupFieldTypes)

		ok := f.HandleSubmit(func(values rules.Values) {
			log.Info("signup accepted", "email", values.String("email"))
		})
		if ok {
			render(w, http.StatusOK, signupPage{Values: newSignupForm().Values(), Success: true})
			return
		}

		log.Debug("signup rejected", "fields", f.Errors().Fields())

		// Only surface errors for touched fields; submit touches every
		// ruled field, so after a failed post that is all of them.
		visible := form.Errors{}
		for _, field := range f.Errors().Fields() {
			if f.Touched(field) {
				visible[field] = f.Error(field)
			}
		}
		render(w, http.StatusUnprocessableEntity, signupPage{Values: f.Values(), Errors: visible})
	}
}

func render(w http.ResponseWriter, status int, page signupPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := signupTemplate.Execute(w, page); err != nil {
		slog.Default().Error("render failed", "error", err)
	}
}

var signupTemplate = template.Must(template.New("signup").Parse(`<!DOCTYPE html>
<html>
<head><title>Sign up</title></head>
<body>
  <h1>Sign up</h1>
  {{if .Success}}<p class="success">Account created.</p>{{end}}
  <form method="post" action="/">
    <p>
      <label>Email <input type="email" name="email" value="{{.Values.String "email"}}"></label>
      {{with .Errors.Get "email"}}<span class="error">{{.}}</span>{{end}}
    </p>
    <p>
      <label>Password <input type="password" name="password"></label>
      {{with .Errors.Get "password"}}<span class="error">{{.}}</span>{{end}}
    </p>
    <p>
      <label>Confirm password <input type="password" name="confirm"></label>
      {{with .Errors.Get "confirm"}}<span class="error">{{.}}</span>{{end}}
    </p>
    <p>
      <label>Age <input type="number" name="age" value="{{.Values.String "age"}}"></label>
      {{with .Errors.Get "age"}}<span class="error">{{.}}</span>{{end}}
    </p>
    <p>
      <label><input type="checkbox" name="terms" {{if .Values.Bool "terms"}}checked{{end}}> I accept the terms</label>
    </p>
    <p><button type="submit">Create account</button></p>
  </form>
</body>
</html>
`))
