// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// release is the subset of a helm release report printed after install and upgrade.
type release struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Version   int    `json:"version"`
	Info      struct {
		Status       string `json:"status"`
		Description  string `json:"description"`
		LastDeployed string `json:"last_deployed"`
		Notes        string `json:"notes"`
	} `json:"info"`
	Chart struct {
		Metadata struct {
			Name       string `json:"name"`
			Version    string `json:"version"`
			AppVersion string `json:"appVersion"`
		} `json:"metadata"`
	} `json:"chart"`
}

// listedRelease is one element of a release list.
type listedRelease struct {
	Name       string `json:"name"`
	Namespace  string `json:"namespace"`
	Revision   string `json:"revision"`
	Updated    string `json:"updated"`
	Status     string `json:"status"`
	Chart      string `json:"chart"`
	AppVersion string `json:"app_version"`
}

// searchResult is one element of a repository search.
type searchResult struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	AppVersion  string `json:"app_version"`
	Description string `json:"description"`
}

func renderRelease(data string, raw bool) error {
	if raw || data == "" {
		pterm.Println(data)
		return nil
	}
	var r release
	if err := json.Unmarshal([]byte(data), &r); err != nil || r.Name == "" {
		pterm.Println(data)
		return nil
	}

	label := pterm.NewStyle(pterm.FgLightCyan)
	pterm.Println(label.Sprint("NAME:       ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(r.Name))
	pterm.Println(label.Sprint("NAMESPACE:  ") + r.Namespace)
	pterm.Println(label.Sprint("STATUS:     ") + r.Info.Status)
	pterm.Println(label.Sprint("REVISION:   ") + strconv.Itoa(r.Version))
	if r.Chart.Metadata.Name != "" {
		pterm.Println(label.Sprint("CHART:      ") + fmt.Sprintf("%s-%s", r.Chart.Metadata.Name, r.Chart.Metadata.Version))
	}
	if r.Info.Notes != "" {
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint(r.Info.Notes))
	}
	return nil
}

func releaseTable(data string, headers bool) (pterm.TableData, error) {
	var releases []listedRelease
	if data != "" {
		if err := json.Unmarshal([]byte(data), &releases); err != nil {
			return nil, err
		}
	}
	var table pterm.TableData
	if headers {
		table = append(table, []string{"NAME", "NAMESPACE", "REVISION", "UPDATED", "STATUS", "CHART", "APP VERSION"})
	}
	for _, r := range releases {
		table = append(table, []string{r.Name, r.Namespace, r.Revision, r.Updated, r.Status, r.Chart, r.AppVersion})
	}
	return table, nil
}

func renderReleaseList(data string, raw, noHeaders bool) error {
	if raw {
		if data == "" {
			data = "[]"
		}
		pterm.Println(data)
		return nil
	}
	table, err := releaseTable(data, !noHeaders)
	if err != nil {
		pterm.Println(data)
		return nil
	}
	if len(table) == 0 || (!noHeaders && len(table) == 1) {
		pterm.Info.Println("No releases found")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader(!noHeaders).WithData(table).Render()
}

func searchTable(data string) (pterm.TableData, error) {
	var results []searchResult
	if data != "" {
		if err := json.Unmarshal([]byte(data), &results); err != nil {
			return nil, err
		}
	}
	table := pterm.TableData{{"NAME", "CHART VERSION", "APP VERSION", "DESCRIPTION"}}
	for _, r := range results {
		table = append(table, []string{r.Name, r.Version, r.AppVersion, r.Description})
	}
	return table, nil
}

func renderSearch(data string, raw bool) error {
	if raw {
		if data == "" {
			data = "[]"
		}
		pterm.Println(data)
		return nil
	}
	table, err := searchTable(data)
	if err != nil {
		pterm.Println(data)
		return nil
	}
	if len(table) == 1 {
		pterm.Info.Println("No results found")
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}
