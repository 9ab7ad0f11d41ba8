package generate

import (
	"fmt"
	"strings"
)

// IntegrationTest renders a skeleton for component-interaction tests. The
// body is pure scaffolding: generation has no knowledge of how the named
// components actually communicate.
func IntegrationTest(components []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `"""
Integration tests for components: %s.

This file contains integration tests that verify component interactions
and data flow between different parts of the system.
"""

import pytest
from unittest.mock import Mock, patch

class TestComponentIntegration:
    """Integration tests for component interactions."""

`, strings.Join(components, ", "))

	first := "components"
	if len(components) > 0 {
		first = strings.ToLower(components[0])
	}
	fmt.Fprintf(&b, `    def test_%s_integration(self):
        """Test integration between components."""
        # TODO: Implement integration test
        # - Test component communication
        # - Test data flow
        # - Test error propagation
        pass

    def test_error_handling_integration(self):
        """Test error handling across components."""
        # TODO: Test error scenarios
        # - Network failures
        # - Database errors
        # - Component unavailability
        pass
`, snake(first))

	return b.String()
}

// E2ETest renders a skeleton for end-to-end workflow tests. The performance
// stub is emitted only when performance tests are enabled.
func E2ETest(workflows []string, includePerformance bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, `"""
End-to-end tests for workflows: %s.

This file contains comprehensive E2E tests that verify complete user
workflows from start to finish.
"""

import pytest
from unittest.mock import Mock, patch

class TestUserWorkflows:
    """End-to-end tests for user workflows."""

`, strings.Join(workflows, ", "))

	first := "primary"
	if len(workflows) > 0 {
		first = workflows[0]
	}
	fmt.Fprintf(&b, `    def test_%s_workflow(self):
        """Test complete %s workflow."""
        # TODO: Implement E2E test
        # - Test complete user journey
        # - Test UI interactions
        # - Test database operations
        # - Test external service calls
        pass
`, snake(first), first)

	if includePerformance {
		b.WriteString(`
    def test_workflow_performance(self):
        """Test workflow performance and reliability."""
        # TODO: Test performance
        # - Response times
        # - Resource usage
        # - Concurrent operations
        pass
`)
	}

	return b.String()
}

// IntegrationFileName builds the output file name for a set of components,
// e.g. test_api_database_integration.py.
func IntegrationFileName(components []string) string {
	return "test_" + strings.ToLower(strings.Join(components, "_")) + "_integration.py"
}

// E2EFileName builds the output file name for a set of workflows.
func E2EFileName(workflows []string) string {
	return "test_" + strings.ToLower(strings.Join(workflows, "_")) + "_e2e.py"
}
