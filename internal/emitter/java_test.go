package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJava_DefaultRecordJackson(t *testing.T) {
	value := parseValue(t, `{"user_id": 1, "tags": ["a"]}`)
	opts := DefaultJavaOptions()
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `import com.fasterxml.jackson.annotation.JsonProperty;
import java.util.List;

public record Person(
    @JsonProperty("user_id") double userId,
    List<String> tags
) {}
`
	assert.Equal(t, expected, out)
}

func TestJava_NoImportsWhenNothingNeeded(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	out, err := GenerateDefault(value, LangJava)
	require.NoError(t, err)

	expected := `public record Root(
    String name
) {}
`
	assert.Equal(t, expected, out)
}

func TestJava_AnnotationDialects(t *testing.T) {
	value := parseValue(t, `{"user_id": 1}`)

	tests := []struct {
		annotations JavaAnnotations
		importLine  string
		annotation  string
	}{
		{JavaGson, "import com.google.gson.annotations.SerializedName;", `@SerializedName("user_id")`},
		{JavaMoshi, "import com.squareup.moshi.Json;", `@Json(name = "user_id")`},
		{JavaJackson, "import com.fasterxml.jackson.annotation.JsonProperty;", `@JsonProperty("user_id")`},
	}

	for _, tt := range tests {
		t.Run(string(tt.annotations), func(t *testing.T) {
			opts := DefaultJavaOptions()
			opts.Annotations = tt.annotations
			out, err := Generate(value, opts)
			require.NoError(t, err)
			assert.Contains(t, out, tt.importLine)
			assert.Contains(t, out, tt.annotation)
		})
	}

	opts := DefaultJavaOptions()
	opts.Annotations = JavaNone
	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.NotContains(t, out, "import")
	assert.NotContains(t, out, "@")
}

func TestJava_POJO(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultJavaOptions()
	opts.Style = JavaPOJO
	opts.Annotations = JavaNone
	opts.RootName = "Person"

	out, err := Generate(value, opts)
	require.NoError(t, err)

	expected := `public class Person {
    private String name;

    public String getName() {
        return name;
    }

    public void setName(String name) {
        this.name = name;
    }
}
`
	assert.Equal(t, expected, out)
}

func TestJava_POJOEqualsHashCode(t *testing.T) {
	value := parseValue(t, `{"name": "Ada", "age": 37}`)
	opts := DefaultJavaOptions()
	opts.Style = JavaPOJO
	opts.Annotations = JavaNone
	opts.EqualsHashCode = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "import java.util.Objects;")
	assert.Contains(t, out, "public boolean equals(Object o) {")
	assert.Contains(t, out, "if (!(o instanceof Root)) {")
	assert.Contains(t, out, "Objects.equals(name, other.name)")
	assert.Contains(t, out, "return Objects.hash(name, age);")
}

func TestJava_Lombok(t *testing.T) {
	value := parseValue(t, `{"name": "Ada"}`)
	opts := DefaultJavaOptions()
	opts.Style = JavaLombok
	opts.Annotations = JavaNone

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "import lombok.Data;")
	assert.Contains(t, out, "@Data\npublic class Root {")
	assert.Contains(t, out, "private String name;")
	assert.NotContains(t, out, "getName")
}

func TestJava_OptionalBoxesPrimitives(t *testing.T) {
	value := parseValue(t, `{"age": 37, "active": true}`)
	opts := DefaultJavaOptions()
	opts.OptionalFields = true

	out, err := Generate(value, opts)
	require.NoError(t, err)
	assert.Contains(t, out, "import java.util.Optional;")
	assert.Contains(t, out, "Optional<Double> age")
	assert.Contains(t, out, "Optional<Boolean> active")
}

func TestJava_ListElementsAreBoxed(t *testing.T) {
	value := parseValue(t, `{"scores": [1.5], "flags": [true]}`)
	out, err := GenerateDefault(value, LangJava)
	require.NoError(t, err)
	assert.Contains(t, out, "List<Double> scores")
	assert.Contains(t, out, "List<Boolean> flags")
}
