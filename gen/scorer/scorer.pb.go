// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: scorer.proto

package scorer

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

type SegmentFeatures struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Flattened per-segment feature vector (slope, roughness, stability for
	// ground; obstacle density, turbulence, wind speed for aerial).
	Features      []float32 `protobuf:"fixed32,1,rep,packed,name=features,proto3" json:"features,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SegmentFeatures) Reset() {
	*x = SegmentFeatures{}
	mi := &file_scorer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SegmentFeatures) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SegmentFeatures) ProtoMessage() {}

func (x *SegmentFeatures) ProtoReflect() protoreflect.Message {
	mi := &file_scorer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SegmentFeatures.ProtoReflect.Descriptor instead.
func (*SegmentFeatures) Descriptor() ([]byte, []int) {
	return file_scorer_proto_rawDescGZIP(), []int{0}
}

func (x *SegmentFeatures) GetFeatures() []float32 {
	if x != nil {
		return x.Features
	}
	return nil
}

type ScoreSegmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Segments      []*SegmentFeatures     `protobuf:"bytes,1,rep,name=segments,proto3" json:"segments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScoreSegmentsRequest) Reset() {
	*x = ScoreSegmentsRequest{}
	mi := &file_scorer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScoreSegmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoreSegmentsRequest) ProtoMessage() {}

func (x *ScoreSegmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scorer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoreSegmentsRequest.ProtoReflect.Descriptor instead.
func (*ScoreSegmentsRequest) Descriptor() ([]byte, []int) {
	return file_scorer_proto_rawDescGZIP(), []int{1}
}

func (x *ScoreSegmentsRequest) GetSegments() []*SegmentFeatures {
	if x != nil {
		return x.Segments
	}
	return nil
}

type SegmentScore struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Risk          float32                `protobuf:"fixed32,1,opt,name=risk,proto3" json:"risk,omitempty"`             // learned risk in [0, 1]
	Penalty       float32                `protobuf:"fixed32,2,opt,name=penalty,proto3" json:"penalty,omitempty"`       // learned domain penalty in [0, 1]
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"` // scoring confidence in [0, 1]
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SegmentScore) Reset() {
	*x = SegmentScore{}
	mi := &file_scorer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SegmentScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SegmentScore) ProtoMessage() {}

func (x *SegmentScore) ProtoReflect() protoreflect.Message {
	mi := &file_scorer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SegmentScore.ProtoReflect.Descriptor instead.
func (*SegmentScore) Descriptor() ([]byte, []int) {
	return file_scorer_proto_rawDescGZIP(), []int{2}
}

func (x *SegmentScore) GetRisk() float32 {
	if x != nil {
		return x.Risk
	}
	return 0
}

func (x *SegmentScore) GetPenalty() float32 {
	if x != nil {
		return x.Penalty
	}
	return 0
}

func (x *SegmentScore) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ScoreSegmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scores        []*SegmentScore        `protobuf:"bytes,1,rep,name=scores,proto3" json:"scores,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScoreSegmentsResponse) Reset() {
	*x = ScoreSegmentsResponse{}
	mi := &file_scorer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScoreSegmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoreSegmentsResponse) ProtoMessage() {}

func (x *ScoreSegmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scorer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoreSegmentsResponse.ProtoReflect.Descriptor instead.
func (*ScoreSegmentsResponse) Descriptor() ([]byte, []int) {
	return file_scorer_proto_rawDescGZIP(), []int{3}
}

func (x *ScoreSegmentsResponse) GetScores() []*SegmentScore {
	if x != nil {
		return x.Scores
	}
	return nil
}

var File_scorer_proto protoreflect.FileDescriptor

var file_scorer_proto_rawDesc = string([]byte{
	0x0a, 0x0c, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06,
	0x73, 0x63, 0x6f, 0x72, 0x65, 0x72, 0x22, 0x2d, 0x0a, 0x0f, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e,
	0x74, 0x46, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x73, 0x12, 0x1a, 0x0a, 0x08, 0x66, 0x65, 0x61,
	0x74, 0x75, 0x72, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x02, 0x52, 0x08, 0x66, 0x65, 0x61,
	0x74, 0x75, 0x72, 0x65, 0x73, 0x22, 0x4b, 0x0a, 0x14, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x53, 0x65,
	0x67, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x33, 0x0a,
	0x08, 0x73, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32,
	0x17, 0x2e, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x72, 0x2e, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74,
	0x46, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x73, 0x52, 0x08, 0x73, 0x65, 0x67, 0x6d, 0x65, 0x6e,
	0x74, 0x73, 0x22, 0x5c, 0x0a, 0x0c, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x53, 0x63, 0x6f,
	0x72, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x69, 0x73, 0x6b, 0x18, 0x01, 0x20, 0x01, 0x28, 0x02,
	0x52, 0x04, 0x72, 0x69, 0x73, 0x6b, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74,
	0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x02, 0x52, 0x07, 0x70, 0x65, 0x6e, 0x61, 0x6c, 0x74, 0x79,
	0x12, 0x1e, 0x0a, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x02, 0x52, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65,
	0x22, 0x45, 0x0a, 0x15, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2c, 0x0a, 0x06, 0x73, 0x63, 0x6f,
	0x72, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x14, 0x2e, 0x73, 0x63, 0x6f, 0x72,
	0x65, 0x72, 0x2e, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x52,
	0x06, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x73, 0x32, 0x5d, 0x0a, 0x0d, 0x53, 0x63, 0x6f, 0x72, 0x65,
	0x72, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x4c, 0x0a, 0x0d, 0x53, 0x63, 0x6f, 0x72,
	0x65, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x1c, 0x2e, 0x73, 0x63, 0x6f, 0x72,
	0x65, 0x72, 0x2e, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x72,
	0x2e, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x30, 0x5a, 0x2e, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62,
	0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x65, 0x6f, 0x73, 0x2d, 0x72, 0x6f, 0x62, 0x6f, 0x74, 0x69, 0x63,
	0x73, 0x2f, 0x6d, 0x6f, 0x74, 0x69, 0x6f, 0x6e, 0x2d, 0x63, 0x6f, 0x72, 0x65, 0x2f, 0x67, 0x65,
	0x6e, 0x2f, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x72, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_scorer_proto_rawDescOnce sync.Once
	file_scorer_proto_rawDescData []byte
)

func file_scorer_proto_rawDescGZIP() []byte {
	file_scorer_proto_rawDescOnce.Do(func() {
		file_scorer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scorer_proto_rawDesc), len(file_scorer_proto_rawDesc)))
	})
	return file_scorer_proto_rawDescData
}

var file_scorer_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_scorer_proto_goTypes = []any{
	(*SegmentFeatures)(nil),       // 0: scorer.SegmentFeatures
	(*ScoreSegmentsRequest)(nil),  // 1: scorer.ScoreSegmentsRequest
	(*SegmentScore)(nil),          // 2: scorer.SegmentScore
	(*ScoreSegmentsResponse)(nil), // 3: scorer.ScoreSegmentsResponse
}
var file_scorer_proto_depIdxs = []int32{
	0, // 0: scorer.ScoreSegmentsRequest.segments:type_name -> scorer.SegmentFeatures
	2, // 1: scorer.ScoreSegmentsResponse.scores:type_name -> scorer.SegmentScore
	1, // 2: scorer.ScorerService.ScoreSegments:input_type -> scorer.ScoreSegmentsRequest
	3, // 3: scorer.ScorerService.ScoreSegments:output_type -> scorer.ScoreSegmentsResponse
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_scorer_proto_init() }
func file_scorer_proto_init() {
	if File_scorer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scorer_proto_rawDesc), len(file_scorer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_scorer_proto_goTypes,
		DependencyIndexes: file_scorer_proto_depIdxs,
		MessageInfos:      file_scorer_proto_msgTypes,
	}.Build()
	File_scorer_proto = out.File
	file_scorer_proto_goTypes = nil
	file_scorer_proto_depIdxs = nil
}
