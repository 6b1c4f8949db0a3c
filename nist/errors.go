package nist

import (
	"fmt"

	thermo "gothermo"
)

//errDecorate asserts that err implements thermo.Error and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(thermo.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the error type for webbook scraping and table rewriting. It
//fulfills thermo.Error.
type Error struct {
	message string
	url     string //the page or file that has problems, or an empty string
	deco    []string
}

func (err Error) Error() string {
	if err.url != "" {
		return fmt.Sprintf("nist: %s (%s)", err.message, err.url)
	}
	return "nist: " + err.message
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//URL returns the page or file the error is associated with.
func (err Error) URL() string { return err.url }

const (
	NoData       = "no table data available"
	FetchFailed  = "fetching the page failed"
	BadPage      = "page has no parsable data table"
	WrongState   = "state of matter must be S or L"
	UnableToOpen = "unable to open file"
	WriteFailed  = "unable to write file"
	WrongFormat  = "wrong format in raw table file"
)
