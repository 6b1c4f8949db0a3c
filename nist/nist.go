package nist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	thermo "gothermo"
)

//DefaultBaseURL is the NIST webbook root.
const DefaultBaseURL = "https://webbook.nist.gov"

//Client fetches and parses webbook pages. The zero HTTP client and
//base URL are filled in by NewClient; a non-nil Cache short-circuits
//repeated fetches of the same page.
type Client struct {
	HTTP  *http.Client
	Base  string
	Cache *PageCache
}

//NewClient returns a Client against the real webbook, without a cache.
func NewClient() *Client {
	return &Client{HTTP: http.DefaultClient, Base: DefaultBaseURL}
}

//get fetches a page, through the cache when one is set, and parses it.
func (c *Client) get(url string) (*html.Node, error) {
	if c.Cache != nil {
		if data, ok := c.Cache.Get(url); ok {
			return html.Parse(bytes.NewReader(data))
		}
	}
	resp, err := c.HTTP.Get(url)
	if err != nil {
		return nil, Error{FetchFailed + ": " + err.Error(), url, []string{"get"}}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, Error{FetchFailed + ": " + resp.Status, url, []string{"get"}}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Error{FetchFailed + ": " + err.Error(), url, []string{"get"}}
	}
	if c.Cache != nil {
		if err := c.Cache.Put(url, body); err != nil {
			log.Printf("nist: can't cache %s: %v", url, err)
		}
	}
	return html.Parse(bytes.NewReader(body))
}

//TableURL returns the absolute URL of the condensed-phase (JANAF)
//thermochemistry table for an element symbol, in the solid ("S") or
//liquid ("L") state. Elements without such a table fail with a NoData
//error.
func (c *Client) TableURL(symbol, state string) (string, error) {
	if state != "S" && state != "L" {
		return "", Error{WrongState + ": " + state, "", []string{"TableURL"}}
	}
	pageURL := fmt.Sprintf("%s/cgi/cbook.cgi?Formula=%s&NoIon=on&Units=SI&cTC=on", c.Base, symbol)
	root, err := c.get(pageURL)
	if err != nil {
		return "", errDecorate(err, "TableURL")
	}
	marker := "&Table=on#JANAFS"
	if state == "L" {
		marker = "&Table=on#JANAFL"
	}
	for _, href := range anchorHrefs(root) {
		if strings.Contains(href, marker) {
			return c.Base + href, nil
		}
	}
	return "", Error{NoData, pageURL, []string{"TableURL"}}
}

//Section is one run of scraped rows belonging to one phase column of
//the webbook page.
type Section struct {
	Comment string      //the full phase-description cell, empty for liquids
	Rows    [][5]string //temperature, heat capacity, entropy, G/T, H-H298.15
}

//RawTable is the scraped table for one phase of one element.
type RawTable struct {
	Sections []Section
}

//SolidTables parses a solid-phase table page. The first data table on
//the page names the phase of each data column; the following tables
//hold the series. One RawTable per distinct phase is returned, phases
//in lexical order, with the columns of the same phase concatenated as
//sections.
func SolidTables(root *html.Node) ([]RawTable, error) {
	dataTables := findAll(root, "table", "data")
	if len(dataTables) < 2 {
		return nil, Error{BadPage, "", []string{"SolidTables"}}
	}
	phaseCells := findAllExactClass(dataTables[0], "td", "exp left")
	if len(phaseCells) == 0 {
		return nil, Error{BadPage, "", []string{"SolidTables"}}
	}
	phaseNames := make([]string, len(phaseCells))
	for i, cell := range phaseCells {
		phaseNames[i] = strings.SplitN(nodeText(cell), ";", 2)[0]
	}
	uniquePhases := uniqueSorted(phaseNames)
	tables := make([]RawTable, 0, len(uniquePhases))
	for _, phase := range uniquePhases {
		var t RawTable
		for col, name := range phaseNames {
			if name != phase || col+1 >= len(dataTables) {
				continue
			}
			s := Section{Comment: nodeText(phaseCells[col]), Rows: tableRows(dataTables[col+1])}
			t.Sections = append(t.Sections, s)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

//LiquidTable parses a liquid-phase table page, which carries a single
//series.
func LiquidTable(root *html.Node) (RawTable, error) {
	rows := tableRows(root)
	if len(rows) == 0 {
		return RawTable{}, Error{BadPage, "", []string{"LiquidTable"}}
	}
	return RawTable{Sections: []Section{{Rows: rows}}}, nil
}

//tableRows collects the data rows (tr elements of class exp) under n,
//five cells each. Short rows are dropped.
func tableRows(n *html.Node) [][5]string {
	var rows [][5]string
	for _, tr := range findAll(n, "tr", "exp") {
		tds := findAll(tr, "td", "")
		if len(tds) < 5 {
			continue
		}
		var r [5]string
		for i := 0; i < 5; i++ {
			r[i] = strings.TrimSpace(nodeText(tds[i]))
		}
		rows = append(rows, r)
	}
	return rows
}

//rawHeader is the first line of every raw table file.
const rawHeader = "# Temperature C S G/T H-H298.15"

//WriteRaw persists a scraped table: the column header, then each
//section's phase comment followed by its rows, cells joined by five
//spaces.
func WriteRaw(path string, t RawTable) error {
	f, err := os.Create(path)
	if err != nil {
		return Error{WriteFailed + ": " + err.Error(), path, []string{"WriteRaw"}}
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, rawHeader)
	for _, s := range t.Sections {
		if s.Comment != "" {
			fmt.Fprintf(w, "# %s\n", s.Comment)
		}
		for _, r := range s.Rows {
			fmt.Fprintf(w, "%s     %s     %s     %s     %s\n", r[0], r[1], r[2], r[3], r[4])
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return Error{WriteFailed + ": " + err.Error(), path, []string{"WriteRaw"}}
	}
	return f.Close()
}

//ConvertFile rewrites a raw table file as an annotated .dat file next
//to it: the same series with entropy converted to kB/atom and enthalpy
//to meV/atom prepended to the original J/mol*K and kJ/mol columns. The
//element and state are taken from the file name, which must look like
//	<symbol>_<S|L><phase>_table.txt
//as written by the import flows.
func ConvertFile(rawpath string) error {
	base := filepath.Base(rawpath)
	if !strings.HasSuffix(base, "_table.txt") {
		return Error{WrongFormat + ": name must end in _table.txt", rawpath, []string{"ConvertFile"}}
	}
	parts := strings.SplitN(base, "_", 3)
	if len(parts) < 3 {
		return Error{WrongFormat + ": name needs symbol and state fields", rawpath, []string{"ConvertFile"}}
	}
	symbol := parts[0]
	state := ""
	if strings.Contains(parts[1], "S") {
		state = "Solid"
	} else if strings.Contains(parts[1], "L") {
		state = "Liquid"
	} else {
		return Error{WrongState + ": " + parts[1], rawpath, []string{"ConvertFile"}}
	}
	z, err := thermo.ResolveElement(symbol)
	if err != nil {
		return errDecorate(err, "ConvertFile")
	}
	mass := thermo.DefaultWeight(z)

	in, err := os.Open(rawpath)
	if err != nil {
		return Error{UnableToOpen + ": " + err.Error(), rawpath, []string{"ConvertFile"}}
	}
	defer in.Close()
	outpath := strings.TrimSuffix(rawpath, "_table.txt") + ".dat"
	out, err := os.Create(outpath)
	if err != nil {
		return Error{WriteFailed + ": " + err.Error(), outpath, []string{"ConvertFile"}}
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# %s at 1 bar, %s\n# Atomic Number: %d\n# Atomic Mass: %s\n# Source: nist.gov\n",
		symbol, state, z, strconv.FormatFloat(mass, 'g', -1, 64))

	scanner := bufio.NewScanner(in)
	scanner.Scan() //the raw column header
	if state == "Solid" && scanner.Scan() {
		//the first phase-description comment is kept in the output
		fmt.Fprintln(w, scanner.Text())
	}
	fmt.Fprint(w, "# Unit Conversion Factors: 1 J/mol*K = 0.1203 kB/atom   |   1 kJ/mol = 1/10.3644 meV/atom\n")
	fmt.Fprint(w, "# Temperature (K)\tEntropy (kB/atom)\tEnthalpy (meV/atom)\tEntropy (J/mol*K)\tEnthalpy(kJ/mol)\n")
	for scanner.Scan() {
		cells := strings.Split(scanner.Text(), "     ")
		if len(cells) < 5 || strings.Contains(cells[0], "#") {
			continue
		}
		temperature, err1 := strconv.ParseFloat(strings.TrimSpace(cells[0]), 64)
		entropy, err2 := strconv.ParseFloat(strings.TrimSpace(cells[2]), 64)
		enthalpy, err3 := strconv.ParseFloat(strings.TrimSpace(cells[4]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue //not a data row
		}
		skb := thermo.SJMolK2KBAtom(entropy)
		hmev := thermo.EKJMol2MeVAtom(enthalpy)
		//wide enthalpies need one tab less to keep the columns aligned
		if hmev > 100 {
			fmt.Fprintf(w, "%.1f\t\t\t%.4f\t\t\t%.4f\t\t%s\t\t\t%s\n", temperature, skb, hmev,
				strings.TrimSpace(cells[2]), strings.TrimSpace(cells[4]))
		} else {
			fmt.Fprintf(w, "%.1f\t\t\t%.4f\t\t\t%.4f\t\t\t%s\t\t\t%s\n", temperature, skb, hmev,
				strings.TrimSpace(cells[2]), strings.TrimSpace(cells[4]))
		}
	}
	if err := scanner.Err(); err != nil {
		w.Flush()
		out.Close()
		return Error{WrongFormat + ": " + err.Error(), rawpath, []string{"ConvertFile"}}
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return Error{WriteFailed + ": " + err.Error(), outpath, []string{"ConvertFile"}}
	}
	return out.Close()
}

//ImportElement scrapes the table(s) for one element and state into
//dir, writing the raw table file(s) and the annotated .dat file(s).
//Solids can have several phases; each phase is an independent artifact
//and a failure on one does not stop the others. All failures are
//returned; a nil return means the element imported cleanly.
func (c *Client) ImportElement(dir, symbol, state string) []error {
	url, err := c.TableURL(symbol, state)
	if err != nil {
		return []error{errDecorate(err, "ImportElement")}
	}
	root, err := c.get(url)
	if err != nil {
		return []error{errDecorate(err, "ImportElement")}
	}
	var errs []error
	write := func(name string, t RawTable) {
		path := filepath.Join(dir, name)
		if err := WriteRaw(path, t); err != nil {
			errs = append(errs, errDecorate(err, "ImportElement"))
			return
		}
		if err := ConvertFile(path); err != nil {
			errs = append(errs, errDecorate(err, "ImportElement"))
		}
	}
	if state == "S" {
		tables, err := SolidTables(root)
		if err != nil {
			return []error{errDecorate(err, "ImportElement")}
		}
		for i, t := range tables {
			write(fmt.Sprintf("%s_S%d_table.txt", symbol, i+1), t)
		}
	} else {
		t, err := LiquidTable(root)
		if err != nil {
			return []error{errDecorate(err, "ImportElement")}
		}
		write(fmt.Sprintf("%s_L_table.txt", symbol), t)
	}
	return errs
}

//ImportPeriodicTable runs ImportElement for the solid and liquid tables
//of every element that has webbook data, into dir. Elements without
//data and per-element failures are logged and skipped; the returned
//count is the number of elements with at least one imported table.
func (c *Client) ImportPeriodicTable(dir string) int {
	imported := 0
	for z := 1; z <= thermo.NElements; z++ {
		symbol := thermo.Symbol(z)
		if _, err := c.TableURL(symbol, "S"); err != nil {
			log.Printf("There is no data available for %s.", symbol)
			continue
		}
		ok := true
		for _, err := range c.ImportElement(dir, symbol, "S") {
			log.Printf("nist: %s solid: %v", symbol, err)
			ok = false
		}
		if _, err := c.TableURL(symbol, "L"); err == nil {
			for _, err := range c.ImportElement(dir, symbol, "L") {
				log.Printf("nist: %s liquid: %v", symbol, err)
			}
		}
		if ok {
			imported++
		}
	}
	return imported
}

//HTML helpers. The class matching follows the usual HTML semantics:
//findAll matches a class token, findAllExactClass the verbatim class
//attribute (the webbook marks phase cells with class="exp left").

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClassToken(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attrVal(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

//findAll returns the elements with the given tag under n, filtered by
//class token if class is not empty.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var out []*html.Node
	walk(n, func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == tag && (class == "" || hasClassToken(c, class)) {
			out = append(out, c)
		}
	})
	return out
}

func findAllExactClass(n *html.Node, tag, class string) []*html.Node {
	var out []*html.Node
	walk(n, func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == tag && attrVal(c, "class") == class {
			out = append(out, c)
		}
	})
	return out
}

func anchorHrefs(n *html.Node) []string {
	var out []string
	for _, a := range findAll(n, "a", "") {
		if href := attrVal(a, "href"); href != "" {
			out = append(out, href)
		}
	}
	return out
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func uniqueSorted(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
