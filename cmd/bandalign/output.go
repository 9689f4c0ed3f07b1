package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/diagband/bandalign"
	"github.com/katalvlaran/diagband/internal/batch"
	"github.com/katalvlaran/diagband/internal/config"
	"gopkg.in/yaml.v3"
)

// report is the structured form of one result for yaml and json output.
type report struct {
	Pair     int    `yaml:"pair" json:"pair"`
	U        string `yaml:"u" json:"u"`
	V        string `yaml:"v" json:"v"`
	Left     int    `yaml:"left" json:"left"`
	Right    int    `yaml:"right" json:"right"`
	Distance *int   `yaml:"distance,omitempty" json:"distance,omitempty"`
	Cigar    string `yaml:"cigar,omitempty" json:"cigar,omitempty"`
	Replaced *int   `yaml:"replaced,omitempty" json:"replaced,omitempty"`
	Inserted *int   `yaml:"inserted,omitempty" json:"inserted,omitempty"`
	Deleted  *int   `yaml:"deleted,omitempty" json:"deleted,omitempty"`
	OK       *bool  `yaml:"ok,omitempty" json:"ok,omitempty"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

func newReport(task batch.Task, r batch.Result) report {
	rep := report{Pair: r.Index, U: r.UID, V: r.VID, Left: r.Band.Left, Right: r.Band.Right}
	if r.Err != nil {
		rep.Error = r.Err.Error()
	}
	if !r.Distance.IsUnreachable() {
		d := int(r.Distance)
		rep.Distance = &d
	}
	if a := r.Alignment; a != nil {
		rep.Cigar = a.Cigar()
		rp, in, del := a.Counts()
		rep.Replaced, rep.Inserted, rep.Deleted = &rp, &in, &del
	}
	if task == batch.TaskCheck {
		ok := r.Err == nil
		rep.OK = &ok
	}

	return rep
}

// render writes results in the requested format.
func render(w io.Writer, format string, task batch.Task, results []batch.Result) error {
	reports := make([]report, len(results))
	for i, r := range results {
		reports[i] = newReport(task, r)
	}

	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case config.FormatCigar:
		for _, rep := range reports {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rep.U, rep.V, distanceText(rep), cigarText(rep)); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderText(w, task, results)
	}
}

func renderText(w io.Writer, task batch.Task, results []batch.Result) error {
	for _, r := range results {
		var err error
		switch {
		case r.Err != nil:
			_, err = fmt.Fprintf(w, "%s %s: error: %v\n", r.UID, r.VID, r.Err)
		case task == batch.TaskCheck:
			_, err = fmt.Fprintf(w, "%s %s: ok\n", r.UID, r.VID)
		case task == batch.TaskDistance:
			_, err = fmt.Fprintf(w, "%s %s band [%d,%d] distance %s\n",
				r.UID, r.VID, r.Band.Left, r.Band.Right, costText(r.Distance))
		default:
			_, err = fmt.Fprintf(w, "%s %s band [%d,%d] cost %s\n%s\n",
				r.UID, r.VID, r.Band.Left, r.Band.Right, costText(r.Distance), r.Alignment)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func costText(c bandalign.Cost) string {
	if c.IsUnreachable() {
		return "inf"
	}

	return strconv.Itoa(int(c))
}

func distanceText(rep report) string {
	if rep.Distance == nil {
		return "*"
	}

	return strconv.Itoa(*rep.Distance)
}

func cigarText(rep report) string {
	switch {
	case rep.Error != "":
		return "*"
	case rep.Cigar == "":
		if rep.OK != nil {
			return "ok"
		}
		return "*"
	default:
		return rep.Cigar
	}
}
