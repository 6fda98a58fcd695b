package prometheus_test

import (
	dto "github.com/prometheus/client_model/go"
)

func counterValues(families []*dto.MetricFamily, name string) map[string]float64 {
	values := make(map[string]float64)
	for _, metric := range family(families, name) {
		labels := make(map[string]string)
		for _, l := range metric.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		values[labels["action"]+"/"+labels["outcome"]] = metric.GetCounter().GetValue()
	}
	return values
}

func gaugeValues(families []*dto.MetricFamily, name string) map[string]float64 {
	values := make(map[string]float64)
	for _, metric := range family(families, name) {
		for _, l := range metric.GetLabel() {
			if l.GetName() == "status" {
				values[l.GetValue()] = metric.GetGauge().GetValue()
			}
		}
	}
	return values
}

func family(families []*dto.MetricFamily, name string) []*dto.Metric {
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()
		}
	}
	return nil
}
