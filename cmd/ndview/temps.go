package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ndview-ml/ndview/nd"
	"github.com/spf13/cobra"
)

// sampleCities and sampleReadings are daily high temperatures in
// Fahrenheit over 10 days in 3 cities.
var sampleCities = []string{"NYC", "LAX", "CHI"}

var sampleReadings = [][]float64{
	{72.0, 80.0, 79.0}, // 2022-06-01
	{79.0, 79.0, 79.0}, // 2022-06-02
	{76.0, 73.0, 83.0}, // 2022-06-03
	{80.0, 70.0, 72.0}, // 2022-06-04
	{77.0, 75.0, 81.0}, // 2022-06-05
	{80.0, 77.0, 76.0}, // 2022-06-06
	{78.0, 76.0, 71.0}, // 2022-06-07
	{82.0, 75.0, 72.0}, // 2022-06-08
	{81.0, 80.0, 80.0}, // 2022-06-09
	{77.0, 81.0, 82.0}, // 2022-06-10
}

func newTempsCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "temps",
		Short: "Convert a day-by-city temperature grid to Celsius and average per city",
		RunE: func(cmd *cobra.Command, args []string) error {
			cities := sampleCities
			readings := sampleReadings
			if csvPath != "" {
				var err error
				cities, readings, err = loadReadingsCSV(csvPath)
				if err != nil {
					return err
				}
			}
			runTemps(cities, readings)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "load readings from a CSV file (header of city names, then one row per day)")
	return cmd
}

// runTemps converts the Fahrenheit grid to Celsius elementwise using
// broadcast scalar constants, then reduces along the day axis for
// per-city averages.
func runTemps(cities []string, readings [][]float64) {
	fahrenheit := nd.FromRows(readings)
	days := fahrenheit.Len()[0]
	numCities := fahrenheit.Len()[1]

	fmt.Printf("Fahrenheit highs (%d days x %d cities):\n%v\n\n", days, numCities, fahrenheit)

	// (F - 32) / 1.8, with the constants broadcast over both axes.
	offset := nd.Scalar(32.0).View().AddDim(0, days).AddDim(1, numCities)
	scale := nd.Scalar(1.8).View().AddDim(0, days).AddDim(1, numCities)
	celsius := nd.Div[float64](nd.Sub[float64](fahrenheit, offset), scale)

	fmt.Printf("Celsius highs:\n%v\n\n", celsius)

	averages := nd.NewWith(nd.Len{numCities}, func(i nd.Index) float64 {
		cityTemps := celsius.View().Extract(1, i[0])
		sum := 0.0
		for v := range cityTemps.All() {
			sum += v
		}
		return sum / float64(days)
	})

	fmt.Println("Average Celsius high per city:")
	for c := 0; c < numCities; c++ {
		fmt.Printf("  %s: %.1f\n", cities[c], averages.At(c))
	}
}

// loadReadingsCSV reads a temperature grid: a header row of city
// names followed by one row of Fahrenheit readings per day.
func loadReadingsCSV(filename string) ([]string, [][]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("CSV file is empty or missing header")
	}

	cities := records[0]
	readings := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(cities) {
			return nil, nil, fmt.Errorf("invalid record length at row %d: got %d, want %d", i+2, len(record), len(cities))
		}
		row := make([]float64, len(record))
		for j, field := range record {
			row[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid reading at row %d, column %d: %w", i+2, j+1, err)
			}
		}
		readings = append(readings, row)
	}

	return cities, readings, nil
}
