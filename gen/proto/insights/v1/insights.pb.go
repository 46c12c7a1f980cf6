// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: insights/v1/insights.proto

package insightsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AnalyzeSurveyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FilePath      string                 `protobuf:"bytes,1,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Sheet         string                 `protobuf:"bytes,2,opt,name=sheet,proto3" json:"sheet,omitempty"`                                 // optional; first sheet if empty
	OutputPath    string                 `protobuf:"bytes,3,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`     // optional; configured default if empty
	IncludeXlsx   bool                   `protobuf:"varint,4,opt,name=include_xlsx,json=includeXlsx,proto3" json:"include_xlsx,omitempty"` // return the classified-use-case workbook
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeSurveyRequest) Reset() {
	*x = AnalyzeSurveyRequest{}
	mi := &file_insights_v1_insights_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeSurveyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeSurveyRequest) ProtoMessage() {}

func (x *AnalyzeSurveyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeSurveyRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeSurveyRequest) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeSurveyRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *AnalyzeSurveyRequest) GetSheet() string {
	if x != nil {
		return x.Sheet
	}
	return ""
}

func (x *AnalyzeSurveyRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *AnalyzeSurveyRequest) GetIncludeXlsx() bool {
	if x != nil {
		return x.IncludeXlsx
	}
	return false
}

type CategoryCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Count         uint32                 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryCount) Reset() {
	*x = CategoryCount{}
	mi := &file_insights_v1_insights_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryCount) ProtoMessage() {}

func (x *CategoryCount) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryCount.ProtoReflect.Descriptor instead.
func (*CategoryCount) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{1}
}

func (x *CategoryCount) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryCount) GetCount() uint32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type CapabilityCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Capability    string                 `protobuf:"bytes,1,opt,name=capability,proto3" json:"capability,omitempty"`
	Count         uint32                 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CapabilityCount) Reset() {
	*x = CapabilityCount{}
	mi := &file_insights_v1_insights_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CapabilityCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CapabilityCount) ProtoMessage() {}

func (x *CapabilityCount) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CapabilityCount.ProtoReflect.Descriptor instead.
func (*CapabilityCount) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{2}
}

func (x *CapabilityCount) GetCapability() string {
	if x != nil {
		return x.Capability
	}
	return ""
}

func (x *CapabilityCount) GetCount() uint32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type SupportCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Level         string                 `protobuf:"bytes,1,opt,name=level,proto3" json:"level,omitempty"`
	Count         uint32                 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SupportCount) Reset() {
	*x = SupportCount{}
	mi := &file_insights_v1_insights_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SupportCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SupportCount) ProtoMessage() {}

func (x *SupportCount) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SupportCount.ProtoReflect.Descriptor instead.
func (*SupportCount) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{3}
}

func (x *SupportCount) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *SupportCount) GetCount() uint32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type AnalyzeSurveyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Responses     uint32                 `protobuf:"varint,1,opt,name=responses,proto3" json:"responses,omitempty"`
	UseCases      uint32                 `protobuf:"varint,2,opt,name=use_cases,json=useCases,proto3" json:"use_cases,omitempty"`
	Uncategorized uint32                 `protobuf:"varint,3,opt,name=uncategorized,proto3" json:"uncategorized,omitempty"`
	TestCases     uint32                 `protobuf:"varint,4,opt,name=test_cases,json=testCases,proto3" json:"test_cases,omitempty"`
	OutputPath    string                 `protobuf:"bytes,5,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	Buckets       []*CategoryCount       `protobuf:"bytes,6,rep,name=buckets,proto3" json:"buckets,omitempty"`
	Capabilities  []*CapabilityCount     `protobuf:"bytes,7,rep,name=capabilities,proto3" json:"capabilities,omitempty"`
	Support       []*SupportCount        `protobuf:"bytes,8,rep,name=support,proto3" json:"support,omitempty"`
	Xlsx          []byte                 `protobuf:"bytes,9,opt,name=xlsx,proto3" json:"xlsx,omitempty"` // set when include_xlsx was requested
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeSurveyResponse) Reset() {
	*x = AnalyzeSurveyResponse{}
	mi := &file_insights_v1_insights_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeSurveyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeSurveyResponse) ProtoMessage() {}

func (x *AnalyzeSurveyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeSurveyResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeSurveyResponse) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{4}
}

func (x *AnalyzeSurveyResponse) GetResponses() uint32 {
	if x != nil {
		return x.Responses
	}
	return 0
}

func (x *AnalyzeSurveyResponse) GetUseCases() uint32 {
	if x != nil {
		return x.UseCases
	}
	return 0
}

func (x *AnalyzeSurveyResponse) GetUncategorized() uint32 {
	if x != nil {
		return x.Uncategorized
	}
	return 0
}

func (x *AnalyzeSurveyResponse) GetTestCases() uint32 {
	if x != nil {
		return x.TestCases
	}
	return 0
}

func (x *AnalyzeSurveyResponse) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *AnalyzeSurveyResponse) GetBuckets() []*CategoryCount {
	if x != nil {
		return x.Buckets
	}
	return nil
}

func (x *AnalyzeSurveyResponse) GetCapabilities() []*CapabilityCount {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

func (x *AnalyzeSurveyResponse) GetSupport() []*SupportCount {
	if x != nil {
		return x.Support
	}
	return nil
}

func (x *AnalyzeSurveyResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type SubmitExportRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	StartDate      string                 `protobuf:"bytes,1,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate        string                 `protobuf:"bytes,2,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`       // YYYY-MM-DD, exclusive
	Description    string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Folder         string                 `protobuf:"bytes,4,opt,name=folder,proto3" json:"folder,omitempty"`
	FilenamePrefix string                 `protobuf:"bytes,5,opt,name=filename_prefix,json=filenamePrefix,proto3" json:"filename_prefix,omitempty"`
	RegionGeojson  string                 `protobuf:"bytes,6,opt,name=region_geojson,json=regionGeojson,proto3" json:"region_geojson,omitempty"` // optional Polygon geometry; default region if empty
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SubmitExportRequest) Reset() {
	*x = SubmitExportRequest{}
	mi := &file_insights_v1_insights_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitExportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitExportRequest) ProtoMessage() {}

func (x *SubmitExportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitExportRequest.ProtoReflect.Descriptor instead.
func (*SubmitExportRequest) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{5}
}

func (x *SubmitExportRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *SubmitExportRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *SubmitExportRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SubmitExportRequest) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *SubmitExportRequest) GetFilenamePrefix() string {
	if x != nil {
		return x.FilenamePrefix
	}
	return ""
}

func (x *SubmitExportRequest) GetRegionGeojson() string {
	if x != nil {
		return x.RegionGeojson
	}
	return ""
}

type ExportJob struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description    string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Collection     string                 `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	StartDate      string                 `protobuf:"bytes,4,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate        string                 `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	Folder         string                 `protobuf:"bytes,6,opt,name=folder,proto3" json:"folder,omitempty"`
	FilenamePrefix string                 `protobuf:"bytes,7,opt,name=filename_prefix,json=filenamePrefix,proto3" json:"filename_prefix,omitempty"`
	OperationName  string                 `protobuf:"bytes,8,opt,name=operation_name,json=operationName,proto3" json:"operation_name,omitempty"`
	Status         string                 `protobuf:"bytes,9,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	SubmittedAt    string                 `protobuf:"bytes,11,opt,name=submitted_at,json=submittedAt,proto3" json:"submitted_at,omitempty"` // RFC 3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExportJob) Reset() {
	*x = ExportJob{}
	mi := &file_insights_v1_insights_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJob) ProtoMessage() {}

func (x *ExportJob) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJob.ProtoReflect.Descriptor instead.
func (*ExportJob) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{6}
}

func (x *ExportJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExportJob) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ExportJob) GetCollection() string {
	if x != nil {
		return x.Collection
	}
	return ""
}

func (x *ExportJob) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *ExportJob) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *ExportJob) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *ExportJob) GetFilenamePrefix() string {
	if x != nil {
		return x.FilenamePrefix
	}
	return ""
}

func (x *ExportJob) GetOperationName() string {
	if x != nil {
		return x.OperationName
	}
	return ""
}

func (x *ExportJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExportJob) GetSubmittedAt() string {
	if x != nil {
		return x.SubmittedAt
	}
	return ""
}

type SubmitExportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitExportResponse) Reset() {
	*x = SubmitExportResponse{}
	mi := &file_insights_v1_insights_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitExportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitExportResponse) ProtoMessage() {}

func (x *SubmitExportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitExportResponse.ProtoReflect.Descriptor instead.
func (*SubmitExportResponse) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitExportResponse) GetJob() *ExportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         uint32                 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExportJobsRequest) Reset() {
	*x = ListExportJobsRequest{}
	mi := &file_insights_v1_insights_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExportJobsRequest) ProtoMessage() {}

func (x *ListExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ListExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{8}
}

func (x *ListExportJobsRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ExportJob           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExportJobsResponse) Reset() {
	*x = ListExportJobsResponse{}
	mi := &file_insights_v1_insights_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExportJobsResponse) ProtoMessage() {}

func (x *ListExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ListExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{9}
}

func (x *ListExportJobsResponse) GetJobs() []*ExportJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

var File_insights_v1_insights_proto protoreflect.FileDescriptor

const file_insights_v1_insights_proto_rawDesc = "" +
	"\n" +
	"\x1ainsights/v1/insights.proto\x12\vinsights.v1\"\x8d\x01\n" +
	"\x14AnalyzeSurveyRequest\x12\x1b\n" +
	"\tfile_path\x18\x01 \x01(\tR\bfilePath\x12\x14\n" +
	"\x05sheet\x18\x02 \x01(\tR\x05sheet\x12\x1f\n" +
	"\voutput_path\x18\x03 \x01(\tR\n" +
	"outputPath\x12!\n" +
	"\finclude_xlsx\x18\x04 \x01(\bR\vincludeXlsx\"A\n" +
	"\rCategoryCount\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x14\n" +
	"\x05count\x18\x02 \x01(\rR\x05count\"G\n" +
	"\x0fCapabilityCount\x12\x1e\n" +
	"\n" +
	"capability\x18\x01 \x01(\tR\n" +
	"capability\x12\x14\n" +
	"\x05count\x18\x02 \x01(\rR\x05count\":\n" +
	"\fSupportCount\x12\x14\n" +
	"\x05level\x18\x01 \x01(\tR\x05level\x12\x14\n" +
	"\x05count\x18\x02 \x01(\rR\x05count\"\xf9\x02\n" +
	"\x15AnalyzeSurveyResponse\x12\x1c\n" +
	"\tresponses\x18\x01 \x01(\rR\tresponses\x12\x1b\n" +
	"\tuse_cases\x18\x02 \x01(\rR\buseCases\x12$\n" +
	"\runcategorized\x18\x03 \x01(\rR\runcategorized\x12\x1d\n" +
	"\n" +
	"test_cases\x18\x04 \x01(\rR\ttestCases\x12\x1f\n" +
	"\voutput_path\x18\x05 \x01(\tR\n" +
	"outputPath\x124\n" +
	"\abuckets\x18\x06 \x03(\v2\x1a.insights.v1.CategoryCountR\abuckets\x12@\n" +
	"\fcapabilities\x18\a \x03(\v2\x1c.insights.v1.CapabilityCountR\fcapabilities\x123\n" +
	"\asupport\x18\b \x03(\v2\x19.insights.v1.SupportCountR\asupport\x12\x12\n" +
	"\x04xlsx\x18\t \x01(\fR\x04xlsx\"\xd9\x01\n" +
	"\x13SubmitExportRequest\x12\x1d\n" +
	"\n" +
	"start_date\x18\x01 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x02 \x01(\tR\aendDate\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x16\n" +
	"\x06folder\x18\x04 \x01(\tR\x06folder\x12'\n" +
	"\x0ffilename_prefix\x18\x05 \x01(\tR\x0efilenamePrefix\x12%\n" +
	"\x0eregion_geojson\x18\x06 \x01(\tR\rregionGeojson\"\xdf\x02\n" +
	"\tExportJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1e\n" +
	"\n" +
	"collection\x18\x03 \x01(\tR\n" +
	"collection\x12\x1d\n" +
	"\n" +
	"start_date\x18\x04 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x05 \x01(\tR\aendDate\x12\x16\n" +
	"\x06folder\x18\x06 \x01(\tR\x06folder\x12'\n" +
	"\x0ffilename_prefix\x18\a \x01(\tR\x0efilenamePrefix\x12%\n" +
	"\x0eoperation_name\x18\b \x01(\tR\roperationName\x12\x16\n" +
	"\x06status\x18\t \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\x12!\n" +
	"\fsubmitted_at\x18\v \x01(\tR\vsubmittedAt\"@\n" +
	"\x14SubmitExportResponse\x12(\n" +
	"\x03job\x18\x01 \x01(\v2\x16.insights.v1.ExportJobR\x03job\"-\n" +
	"\x15ListExportJobsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\rR\x05limit\"D\n" +
	"\x16ListExportJobsResponse\x12*\n" +
	"\x04jobs\x18\x01 \x03(\v2\x16.insights.v1.ExportJobR\x04jobs2i\n" +
	"\x0fInsightsService\x12V\n" +
	"\rAnalyzeSurvey\x12!.insights.v1.AnalyzeSurveyRequest\x1a\".insights.v1.AnalyzeSurveyResponse2\xbf\x01\n" +
	"\rExportService\x12S\n" +
	"\fSubmitExport\x12 .insights.v1.SubmitExportRequest\x1a!.insights.v1.SubmitExportResponse\x12Y\n" +
	"\x0eListExportJobs\x12\".insights.v1.ListExportJobsRequest\x1a#.insights.v1.ListExportJobsResponseBHZFgithub.com/dhenenjay/orbital-insights/gen/proto/insights/v1;insightsv1b\x06proto3"

var (
	file_insights_v1_insights_proto_rawDescOnce sync.Once
	file_insights_v1_insights_proto_rawDescData []byte
)

func file_insights_v1_insights_proto_rawDescGZIP() []byte {
	file_insights_v1_insights_proto_rawDescOnce.Do(func() {
		file_insights_v1_insights_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_insights_v1_insights_proto_rawDesc), len(file_insights_v1_insights_proto_rawDesc)))
	})
	return file_insights_v1_insights_proto_rawDescData
}

var file_insights_v1_insights_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_insights_v1_insights_proto_goTypes = []any{
	(*AnalyzeSurveyRequest)(nil),   // 0: insights.v1.AnalyzeSurveyRequest
	(*CategoryCount)(nil),          // 1: insights.v1.CategoryCount
	(*CapabilityCount)(nil),        // 2: insights.v1.CapabilityCount
	(*SupportCount)(nil),           // 3: insights.v1.SupportCount
	(*AnalyzeSurveyResponse)(nil),  // 4: insights.v1.AnalyzeSurveyResponse
	(*SubmitExportRequest)(nil),    // 5: insights.v1.SubmitExportRequest
	(*ExportJob)(nil),              // 6: insights.v1.ExportJob
	(*SubmitExportResponse)(nil),   // 7: insights.v1.SubmitExportResponse
	(*ListExportJobsRequest)(nil),  // 8: insights.v1.ListExportJobsRequest
	(*ListExportJobsResponse)(nil), // 9: insights.v1.ListExportJobsResponse
}
var file_insights_v1_insights_proto_depIdxs = []int32{
	1, // 0: insights.v1.AnalyzeSurveyResponse.buckets:type_name -> insights.v1.CategoryCount
	2, // 1: insights.v1.AnalyzeSurveyResponse.capabilities:type_name -> insights.v1.CapabilityCount
	3, // 2: insights.v1.AnalyzeSurveyResponse.support:type_name -> insights.v1.SupportCount
	6, // 3: insights.v1.SubmitExportResponse.job:type_name -> insights.v1.ExportJob
	6, // 4: insights.v1.ListExportJobsResponse.jobs:type_name -> insights.v1.ExportJob
	0, // 5: insights.v1.InsightsService.AnalyzeSurvey:input_type -> insights.v1.AnalyzeSurveyRequest
	5, // 6: insights.v1.ExportService.SubmitExport:input_type -> insights.v1.SubmitExportRequest
	8, // 7: insights.v1.ExportService.ListExportJobs:input_type -> insights.v1.ListExportJobsRequest
	4, // 8: insights.v1.InsightsService.AnalyzeSurvey:output_type -> insights.v1.AnalyzeSurveyResponse
	7, // 9: insights.v1.ExportService.SubmitExport:output_type -> insights.v1.SubmitExportResponse
	9, // 10: insights.v1.ExportService.ListExportJobs:output_type -> insights.v1.ListExportJobsResponse
	8, // [8:11] is the sub-list for method output_type
	5, // [5:8] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_insights_v1_insights_proto_init() }
func file_insights_v1_insights_proto_init() {
	if File_insights_v1_insights_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_insights_v1_insights_proto_rawDesc), len(file_insights_v1_insights_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_insights_v1_insights_proto_goTypes,
		DependencyIndexes: file_insights_v1_insights_proto_depIdxs,
		MessageInfos:      file_insights_v1_insights_proto_msgTypes,
	}.Build()
	File_insights_v1_insights_proto = out.File
	file_insights_v1_insights_proto_goTypes = nil
	file_insights_v1_insights_proto_depIdxs = nil
}
