package generate

import (
	"strings"

	"github.com/testforge/testforge/internal/domain"
)

const sampleInputFixture = `@pytest.fixture
def sample_input():
    """Sample input data for testing."""
    return {
        "valid_data": {"key": "value"},
        "invalid_data": {},
        "edge_case_data": {"key": None}
    }`

const mockExternalServiceFixture = `@pytest.fixture
def mock_external_service():
    """Mock external service for testing."""
    with patch('requests.get') as mock_get:
        mock_get.return_value.json.return_value = {"status": "success"}
        yield mock_get`

const mockDatabaseFixture = `@pytest.fixture
def mock_database():
    """Mock database connection for testing."""
    with patch('sqlite3.connect') as mock_connect:
        mock_conn = Mock()
        mock_cursor = Mock()
        mock_connect.return_value = mock_conn
        mock_conn.cursor.return_value = mock_cursor
        yield mock_cursor`

const mockLoggerFixture = `@pytest.fixture
def mock_logger():
    """Mock logger for testing."""
    with patch('logging.getLogger') as mock_get_logger:
        mock_logger = Mock()
        mock_get_logger.return_value = mock_logger
        yield mock_logger`

const tempFileFixture = `@pytest.fixture
def temp_file(tmp_path):
    """Temporary file fixture for testing."""
    file_path = tmp_path / "test_file.txt"
    file_path.write_text("test content")
    return file_path`

// buildFixtures assembles the pytest fixture block for a generated file.
// Mock fixtures follow the generation toggles.
func buildFixtures(cfg domain.CreationConfig) string {
	fixtures := []string{sampleInputFixture}

	if cfg.AutoGenerateMocks && cfg.MockExternalDependencies {
		fixtures = append(fixtures, mockExternalServiceFixture)
	}
	if cfg.AutoGenerateMocks && cfg.MockDatabaseOperations {
		fixtures = append(fixtures, mockDatabaseFixture)
	}

	fixtures = append(fixtures, mockLoggerFixture, tempFileFixture)

	return strings.Join(fixtures, "\n\n") + "\n\n"
}
