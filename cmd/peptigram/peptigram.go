// peptigram maps peptides onto their source proteins, tolerating a fixed
// number of amino acid substitutions, and draws one distribution figure
// per protein.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"

	"github.com/hlapepclust/peptigram/density"
	"github.com/hlapepclust/peptigram/layout"
	"github.com/hlapepclust/peptigram/match"
	"github.com/hlapepclust/peptigram/seqio"
	"github.com/hlapepclust/peptigram/viz"
)

func usage() {
	fmt.Print(
		"peptigram - Visualize peptide distributions across proteins.\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	var fastaFile *string = flag.String("fasta", "", "Protein sequences FASTA file.")
	var peptidesFile *string = flag.String("peptides", "", "Peptides text file, one peptide per line.")
	var mutations *int = flag.Int("mutations", 0, "Number of mutations allowed per match.")
	var output *string = flag.String("output", "peptide_plots", "Output directory for plots.")
	var format *string = flag.String("format", "png", "Output figure format. One of png, pdf, svg, jpg.")
	var width *float64 = flag.Float64("width", 12, "Figure width in inches.")
	var height *float64 = flag.Float64("height", 6, "Figure height in inches.")
	var title *bool = flag.Bool("title", false, "Add protein name as figure title instead of on the protein track.")
	var colorByMutations *bool = flag.Bool("colorByMutations", false, "Color peptide bars by number of mutations.")
	var labelPeptides *bool = flag.Bool("labelPeptides", false, "Add peptide sequence labels next to each bar.")
	var showLegend *bool = flag.Bool("showLegend", false, "Show figure legend.")
	var maxRows *int = flag.Int("maxRows", layout.DefaultConfig.MaxRows, "Number of display rows for peptide bars.")
	var minGap *int = flag.Int("minGap", layout.DefaultConfig.MinGap, "Minimum residue gap between peptides sharing a row.")
	var tableOut *string = flag.String("tableOut", "", "Write all occurrences as a tab separated table to this file.")
	var densityOut *string = flag.String("densityOut", "", "Write per-residue peptide coverage to this file.")
	var densityWindow *int = flag.Int("densityWindow", 9, "Window width for coverage smoothing and peak reporting.")
	var ascii *bool = flag.Bool("ascii", false, "Print a terminal graph of smoothed coverage per protein.")
	flag.Usage = usage
	flag.Parse()

	if *fastaFile == "" || *peptidesFile == "" {
		usage()
		log.Fatalln("ERROR: must supply input files with -fasta and -peptides")
	}
	switch *format {
	case "png", "pdf", "svg", "jpg":
	default:
		log.Fatalf("ERROR: unsupported format %q, must be one of png, pdf, svg, jpg\n", *format)
	}
	if *mutations < 0 {
		log.Fatalf("ERROR: mutations must be non-negative, got %d\n", *mutations)
	}
	if *maxRows <= 0 {
		log.Fatalf("ERROR: maxRows must be positive, got %d\n", *maxRows)
	}

	peptigram(*fastaFile, *peptidesFile, *output, *format, *tableOut, *densityOut,
		*mutations, *maxRows, *minGap, *densityWindow, *width, *height,
		*title, *colorByMutations, *labelPeptides, *showLegend, *ascii)
}

func peptigram(fastaFile, peptidesFile, output, format, tableOut, densityOut string,
	mutations, maxRows, minGap, densityWindow int, width, height float64,
	title, colorByMutations, labelPeptides, showLegend, ascii bool) {
	var err error

	proteins := seqio.ReadProteins(fastaFile)
	peptides := seqio.ReadPeptides(peptidesFile)
	log.Printf("Loaded %d proteins and %d peptides\n", len(proteins), len(peptides))
	log.Printf("Searching with %d mutations allowed\n", mutations)

	err = os.MkdirAll(output, 0755)
	exception.PanicOnErr(err)

	var table, densityTable *fileio.EasyWriter
	if tableOut != "" {
		table = fileio.EasyCreate(tableOut)
		fmt.Fprintln(table, "protein\tpeptide\tstart\tend\tmismatches\tmatchedText")
	}
	if densityOut != "" {
		densityTable = fileio.EasyCreate(densityOut)
		fmt.Fprintln(densityTable, "protein\tposition\tcoverage")
	}

	config := layout.Config{MaxRows: maxRows, MinGap: minGap}
	par := viz.Params{
		Width:            width,
		Height:           height,
		Budget:           mutations,
		Title:            title,
		ColorByMutations: colorByMutations,
		LabelPeptides:    labelPeptides,
		ShowLegend:       showLegend,
	}

	for _, protein := range proteins {
		log.Printf("Processing %s (%d aa)\n", protein.Name, len(protein.Seq))

		occs, err := match.Aggregate(peptides, protein.Seq, mutations)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		log.Printf("  Found %d peptide matches\n", len(occs))

		if table != nil {
			for _, o := range occs {
				fmt.Fprintf(table, "%s\t%s\t%d\t%d\t%d\t%s\n",
					protein.Name, o.Peptide, o.Start, o.End, o.Mismatches, o.MatchedText)
			}
		}

		cov := density.Coverage(occs, len(protein.Seq))
		if densityTable != nil {
			for i := range cov {
				fmt.Fprintf(densityTable, "%s\t%d\t%.0f\n", protein.Name, i+1, cov[i])
			}
		}
		if ascii && len(cov) > 0 {
			fmt.Println(asciigraph.Plot(density.Smooth(cov, densityWindow),
				asciigraph.Height(5), asciigraph.Precision(0), asciigraph.Caption(protein.Name)))
			peakStart, peakMean := density.PeakWindow(cov, densityWindow)
			fmt.Printf("%s: max coverage %.0f, densest %d aa window starts at %d (mean %.1f)\n",
				protein.Name, slices.Max(cov), densityWindow, peakStart, peakMean)
		}

		if len(occs) == 0 {
			continue
		}

		rows, err := layout.Pack(occs, config)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}

		p, err := viz.Render(protein.Name, protein.Seq, rows, par)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		outFile := path.Join(output, protein.Name+"_peptide_distribution."+format)
		err = viz.Save(p, width, height, outFile)
		exception.PanicOnErr(err)
		log.Printf("  Saved plot to %s\n", outFile)
	}

	if table != nil {
		err = table.Close()
		exception.PanicOnErr(err)
	}
	if densityTable != nil {
		err = densityTable.Close()
		exception.PanicOnErr(err)
	}
	log.Println("Done!")
}
