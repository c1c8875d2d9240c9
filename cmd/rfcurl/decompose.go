package main

import (
	"fmt"

	"github.com/jongio/rfcurl/cliout"
	"github.com/jongio/rfcurl/rfc1738"
	"github.com/spf13/cobra"
)

// field is one named part of a decomposition, kept in grammar order.
type field struct {
	name  string
	value string
}

// decomposition is the printable result of a single decomposer.
type decomposition struct {
	Nonterminal rfc1738.Nonterminal `json:"nonterminal" yaml:"nonterminal"`
	Input       string              `json:"input" yaml:"input"`
	Fields      map[string]string   `json:"fields" yaml:"fields"`

	fields []field
}

func newDecomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose NONTERMINAL INPUT",
		Short: "Run a single grammar production against INPUT",
		Long: `Run the decomposer for one nonterminal and print the parts it produced.

Nonterminals: genericurl, scheme, schemepart, login, hostport, host, port,
user, password, urlpath.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nt, err := rfc1738.ParseNonterminal(args[0])
			if err != nil {
				return err
			}
			d, err := decompose(nt, args[1])
			if err != nil {
				return describe(args[1], err)
			}
			return cliout.Print(d, func() {
				cliout.Header(fmt.Sprintf("%s %q", d.Nonterminal, d.Input))
				rows := make([]cliout.TableRow, 0, len(d.fields))
				for _, f := range d.fields {
					rows = append(rows, cliout.TableRow{"Part": f.name, "Value": fmt.Sprintf("%q", f.value)})
				}
				cliout.Table([]string{"Part", "Value"}, rows)
			})
		},
	}
}

// decompose dispatches to the decomposer for nt.
func decompose(nt rfc1738.Nonterminal, input string) (*decomposition, error) {
	var fields []field

	switch nt {
	case rfc1738.GenericURL:
		p, err := rfc1738.DecomposeGenericURL(input)
		if err != nil {
			return nil, err
		}
		fields = []field{{"scheme", p.Scheme}, {"schemepart", p.SchemePart}}
	case rfc1738.SchemePart:
		p, err := rfc1738.DecomposeSchemePart(input)
		if err != nil {
			return nil, err
		}
		fields = []field{{"form", p.Form.String()}}
		if p.Form == rfc1738.FormXChars {
			fields = append(fields, field{"xchars", p.XChars})
		} else {
			fields = append(fields, field{"login", p.Login}, field{"urlpath", p.URLPath})
		}
	case rfc1738.Login:
		p, err := rfc1738.DecomposeLogin(input)
		if err != nil {
			return nil, err
		}
		fields = []field{{"user", p.User}, {"password", p.Password}, {"hostport", p.HostPort}}
	case rfc1738.HostPort:
		p, err := rfc1738.DecomposeHostPort(input)
		if err != nil {
			return nil, err
		}
		fields = []field{{"host", p.Host}, {"port", p.Port}}
	case rfc1738.URLPath:
		p, err := rfc1738.DecomposeURLPath(input)
		if err != nil {
			return nil, err
		}
		fields = []field{{"path", p.Path}, {"query", p.Query}}
	default:
		value, err := decomposeTerminal(nt, input)
		if err != nil {
			return nil, err
		}
		fields = []field{{string(nt), value}}
	}

	d := &decomposition{Nonterminal: nt, Input: input, Fields: make(map[string]string, len(fields)), fields: fields}
	for _, f := range fields {
		d.Fields[f.name] = f.value
	}
	return d, nil
}

// decomposeTerminal handles the productions whose result is the input itself.
func decomposeTerminal(nt rfc1738.Nonterminal, input string) (string, error) {
	switch nt {
	case rfc1738.Scheme:
		return rfc1738.DecomposeScheme(input)
	case rfc1738.Host:
		return rfc1738.DecomposeHost(input)
	case rfc1738.Port:
		return rfc1738.DecomposePort(input)
	case rfc1738.User:
		return rfc1738.DecomposeUser(input)
	case rfc1738.Password:
		return rfc1738.DecomposePassword(input)
	}
	return "", fmt.Errorf("no decomposer for %s", nt)
}
