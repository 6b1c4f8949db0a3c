package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	thermo "gothermo"
	"gothermo/nist"
)

var (
	tablesDir = flag.String("dir", "Tables", "directory for generated conversion and thermochemistry tables")
	cacheDir  = flag.String("cache", "", "directory for the compressed page cache (empty disables caching)")
	refFile   = flag.String("ref", "howerton_atomic_masses.txt", "curated atomic mass reference file")
	massFile  = flag.String("masses", "atomic_masses_list.txt", "persisted atomic mass list")
)

const banner = `------------------------------
Parameter Format:
"Name/Atomic Number/Symbol" "Starting Unit" "Ending Unit"
------------------------------
Current Conversions Supported:

	erg/g/K (cgs) <-> kB/atom
	J/g/K (SI units) <-> kB/atom
	Mbar-cc/g/K (bdivK) <-> kB/atom
	J/mol/K <-> J/g/K

	eV/atom <-> erg/g
	J/g <-> eV/atom
	Ry/atom <-> eV/atom
	Ry/atom <-> erg/g
------------------------------
Examples:
4 J/g/K kB/atom
Carbon erg/g eV/atom
Zr kB/atom Mbar-cc/g/K
------------------------------`

func prompt(in *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, err := in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func newClient() *nist.Client {
	c := nist.NewClient()
	if *cacheDir != "" {
		cache, err := nist.NewPageCache(*cacheDir)
		if err != nil {
			log.Printf("can't set up the page cache: %v", err)
		} else {
			c.Cache = cache
		}
	}
	return c
}

//rebuildTables rebuilds the mass list from the reference file and
//regenerates all four conversion tables. Table failures are reported
//one by one; the remaining tables are still written.
func rebuildTables() error {
	masses, err := thermo.BuildMassList(*refFile)
	if err != nil {
		return err
	}
	if err := thermo.WriteMassList(*massFile, masses); err != nil {
		return err
	}
	ts, err := thermo.BuildTableSet(masses)
	if err != nil {
		return err
	}
	errs := ts.WriteAll(*tablesDir)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "table not written: %v\n", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d tables not written", len(errs), len(thermo.TableKinds))
	}
	return nil
}

//lookupLoop answers factor queries until the user stops. Malformed
//queries are reported and the prompt restarts; they never terminate
//the program.
func lookupLoop(in *bufio.Reader) error {
	masses, err := thermo.LoadMassList(*massFile)
	if err != nil {
		return err
	}
	ts, err := thermo.BuildTableSet(masses)
	if err != nil {
		return err
	}
	fmt.Println(banner)
	for {
		query := prompt(in, "Please state the element, starting unit, and ending unit in this order:\n")
		factor, err := ts.LookupQuery(query)
		if err != nil {
			fmt.Printf("%v / Please check your spelling.\n\n", err)
			continue
		}
		fields := strings.Fields(query)
		z, _ := thermo.ResolveElement(fields[0])
		fmt.Printf("%s, %s -> %s: %G\n", thermo.ElementName(z), fields[1], fields[2], factor)
		if !strings.EqualFold(prompt(in, "\nWould you like to get another conversion factor? (Y/N) "), "y") {
			fmt.Println("\nExiting...")
			return nil
		}
	}
}

func main() {
	flag.Parse()
	in := bufio.NewReader(os.Stdin)
	if err := os.MkdirAll(*tablesDir, 0755); err != nil {
		log.Fatalf("can't create %s: %v", *tablesDir, err)
	}

	choice := strings.ToUpper(prompt(in, "Type PT for the entire periodic table, SE for a single element, "+
		"AM for an atomic mass and table rebuild, LOOKUP for conversion factors, or OTHER for diagnostics: "))
	switch choice {
	case "PT":
		n := newClient().ImportPeriodicTable(*tablesDir)
		fmt.Printf("Imported tables for %d elements into %s\n", n, *tablesDir)
	case "SE":
		element := prompt(in, "What element would you like to convert the units of? (Use the symbol for input) ")
		state := strings.ToUpper(prompt(in, "Solid or Liquid state of matter? (S for solid, L for liquid) "))
		errs := newClient().ImportElement(*tablesDir, element, state)
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%v\n", e)
		}
		if len(errs) > 0 {
			os.Exit(1)
		}
	case "AM":
		//bulk rebuild only; factor queries are a separate run
		if err := rebuildTables(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Mass list and conversion tables rebuilt in %s\n", *tablesDir)
	case "LOOKUP":
		if err := lookupLoop(in); err != nil {
			log.Fatal(err)
		}
	case "OTHER":
		fmt.Printf("k = %G J/K\nN_A = %G 1/mol\ne = %G C\nerg = %G J\nRy = %G erg\n1 Ry = %G eV\n",
			thermo.Boltzmann, thermo.Avogadro, thermo.Charge, thermo.Erg, thermo.RydbergErg, thermo.EVPerRy)
	default:
		fmt.Println("Invalid input!")
		os.Exit(1)
	}
}
